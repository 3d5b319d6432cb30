package ports

// ShellNotifier delivers alias delta scripts to the live shell session
// over a side channel, without interleaving them with user-facing
// output.
type ShellNotifier interface {
	// Send forwards a newline-joined sequence of shell statements to the
	// cooperating shell function for evaluation.
	Send(script string) error
}
