package classifier

// flagArity maps editor flags to the number of following arguments that are
// values, never path candidates.
var flagArity = map[string]int{
	"--add-mcp":                       1,
	"--add":                           1,
	"--category":                      1,
	"--diff":                          2,
	"--disable-extension":             1,
	"--enable-proposed-api":           1,
	"--extensions-dir":                1,
	"--goto":                          1,
	"--inspect-brk-extensions":        1,
	"--inspect-extensions":            1,
	"--install-extension":             1,
	"--locale":                        1,
	"--locate-shell-integration-path": 1,
	"--log":                           1,
	"--merge":                         4,
	"--profile":                       1,
	"--remove":                        1,
	"--sync":                          1,
	"--uninstall-extension":           1,
	"--user-data-dir":                 1,
	"-a":                              1,
	"-d":                              2,
	"-g":                              1,
	"-m":                              4,
}

// terminalSentinels end flag interpretation for the rest of the vector.
var terminalSentinels = map[string]struct{}{
	"--":        {},
	"chat":      {},
	"serve-web": {},
	"tunnel":    {},
}

// arityShortLetters holds the letters of single-dash flags that take values.
// A coalesced cluster containing one of them cannot be split safely.
var arityShortLetters = func() string {
	var letters string
	for flag := range flagArity {
		if len(flag) == 2 && flag[0] == '-' && flag[1] != '-' {
			letters += flag[1:]
		}
	}
	return letters
}()
