package domain

// signalNames maps normalized exit statuses of signal-terminated
// processes to the signal that killed them (status = 128 + signal).
var signalNames = map[int]string{
	132: "SIGILL",
	133: "SIGTRAP",
	134: "SIGABRT",
	136: "SIGFPE",
	138: "SIGBUS",
	139: "SIGSEGV",
	158: "SIGXCPU",
	159: "SIGXFSZ",
}

// SignalName returns the signal name behind a normalized exit status,
// or "" if the status does not correspond to a known signal.
func SignalName(status int) string {
	return signalNames[status]
}
