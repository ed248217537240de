// compileinfoprint is imported by commands for the side effect of printing
// the compileinfo to os.Stderr at startup.
package compileinfoprint

import "github.com/carbocation/seqproj/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
