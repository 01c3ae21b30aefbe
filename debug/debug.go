// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go - cold-path error logging helper
//
// Purpose:
//   - Logs infrequent failure paths (affinity errors, harness setup) without
//     pulling fmt or a logger into library packages.
//
// Notes:
//   - Messages are concatenated and written to stderr in one call.
//
// ⚠️ Never invoke in hot loops - use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "github.com/parsa/bde/utils"

// DropError logs prefix and err.  A nil err logs the prefix alone, which is
// how tagged warnings are emitted.
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs a prefixed diagnostic line.
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
