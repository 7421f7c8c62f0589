package extension

import "github.com/viant/shellsim/model/types"

// Vocabulary is the exhaustive set of recognised command names per category.
// Unknown names fall through to the system category fallback.
var Vocabulary = map[types.Category][]string{
	types.CategoryBuiltin:  {"cd", "echo", "pwd", "whoami", "hostname", "exit", "logout"},
	types.CategoryFile:     {"ls", "cat", "touch", "mkdir", "rm", "cp", "mv"},
	types.CategoryNetwork:  {"ssh", "nc", "netcat", "telnet", "curl", "wget", "ping"},
	types.CategorySecurity: {"nmap", "gobuster", "sqlmap", "metasploit", "msfconsole", "hydra", "wpscan", "nikto"},
	types.CategorySystem:   {"ps", "top", "uname", "date", "uptime", "id", "df", "free", "ip", "ifconfig", "help"},
}
