package fleetctl

// maskToken replaces secret argument values in logged command lines.
const maskToken = "******"

// secretFlags are flags whose following argument must never be logged.
// Extend the set here; call sites stay unchanged.
var secretFlags = map[string]bool{
	"--password": true,
}

// Redact returns a copy of args safe for logging: every value that directly
// follows a secret flag is replaced by the mask token. The input slice is
// never modified — the unredacted vector is still the one executed.
func Redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 1; i < len(out); i++ {
		if secretFlags[out[i-1]] {
			out[i] = maskToken
		}
	}
	return out
}
