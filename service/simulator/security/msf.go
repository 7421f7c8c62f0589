package security

import (
	"context"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	msfPrompt = "msf6 > "
	msfUsage  = "Usage: msfconsole [options]"
)

var (
	msfValued  = []string{"-x", "--execute-command", "-r", "--resource", "-o", "--output"}
	msfBoolean = []string{"-q", "--quiet", "-n", "--no-database", "-L", "--real-readline"}
)

var msfBanner = []string{
	"                                                  ",
	"      .:okOOOkdc'           'cdkOOOko:.",
	"    .xOOOOOOOOOOOOc       cOOOOOOOOOOOOx.",
	"   :OOOOOOOOOOOOOOOk,   ,kOOOOOOOOOOOOOOO:",
	"  'OOOOOOOOOkkkkOOOOO: :OOOOOOOOOOOOOOOOOO'",
	"  oOOOOOOOO.MMMM.oOOOOoOOOOl.MMMM,OOOOOOOOo",
	"  dOOOOOOOO.MMMMMM.cOOOOOc.MMMMMM,OOOOOOOOx",
	"  lOOOOOOOO.MMMMMMMMM;d;MMMMMMMMM,OOOOOOOOl",
	"  .OOOOOOOO.MMM.;MMMMMMMMMMM;MMMM,OOOOOOOO.",
	"   cOOOOOOO.MMM.OOc.MMMMM'oOO.MMM,OOOOOOOc",
	"    oOOOOOO.MMM.OOOO.MMM:OOOO.MMM,OOOOOOo",
	"     lOOOOO.MMM.OOOO.MMM:OOOO.MMM,OOOOOl",
	"      ;OOOO'MMM.OOOO.MMM:OOOO.MMM;OOOO;",
	"       .dOOo'WM.OOOOocccxOOOO.MX'xOOd.",
	"         ,kOl'M.OOOOOOOOOOOOO.M'dOk,",
	"           :kk;.OOOOOOOOOOOOO.;Ok:",
	"             ;kOOOOOOOOOOOOOOOk:",
	"               ,xOOOOOOOOOOOx,",
	"                 .lOOOOOOOl.",
	"                    ,dOd,",
	"                      .",
	"",
	"       =[ metasploit v6.3.44-dev                          ]",
	"+ -- --=[ 2376 exploits - 1232 auxiliary - 416 post       ]",
	"+ -- --=[ 1388 payloads - 46 encoders - 11 nops           ]",
	"+ -- --=[ 9 evasion                                       ]",
	"",
	"Metasploit Documentation: https://docs.metasploit.com/",
	"",
}

func (s *Service) msfconsole(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, msfValued...)
	if unknown := args.Unknown(append(msfValued, msfBoolean...)...); unknown != "" {
		return model.NewUsage("invalid option: " + unknown + "\n" + msfUsage)
	}
	var lines []string
	if !args.Has("-q", "--quiet") {
		lines = append(lines, msfBanner...)
	}
	lines = append(lines, msfPrompt)
	return model.NewSystem(strings.Join(lines, "\n"))
}
