package httpfetch

// NewClientWithSleep exposes the sleep-injecting constructor for tests.
var NewClientWithSleep = newClientWithSleep
