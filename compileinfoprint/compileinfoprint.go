// compileinfoprint is imported for the side effect of printing the compileinfo
// of the running tool to os.Stderr
package compileinfoprint

import "github.com/carbocation/rrnacomp/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
