package classifier

import (
	"strings"
	"unicode/utf8"
)

type state int

const (
	stateNormal state = iota
	stateFollowOn
	stateAfterSentinel
)

// scanner walks the argument vector once, left to right.
type scanner struct {
	session   *Session
	state     state
	flag      string // flag awaiting values in stateFollowOn
	remaining int    // values still owed to flag
}

// Rewrite consumes argv (argv[0] is the invoking program) and returns the
// vector to exec: the editor name followed by exactly one output argument
// per input argument. With no arguments, "." is opened.
func (s *Session) Rewrite(argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyArgv
	}
	args := argv[1:]
	if len(args) == 0 {
		// code opens the current directory by default; make it explicit so
		// it can be rewritten.
		args = []string{"."}
	}

	result := make([]string, 0, len(args)+1)
	result = append(result, s.opts.Editor)

	sc := &scanner{session: s}
	for _, arg := range args {
		out, err := sc.next(arg)
		if err != nil {
			return nil, err
		}
		if err := checkEncodable(out); err != nil {
			return nil, err
		}
		result = append(result, out)
	}

	if sc.state == stateFollowOn {
		// code reports the missing value itself.
		s.logger.Warn("flag is missing values", "flag", sc.flag, "missing", sc.remaining)
	}

	return result, nil
}

// next classifies one argument and returns what to emit for it.
func (sc *scanner) next(arg string) (string, error) {
	switch sc.state {
	case stateFollowOn:
		sc.remaining--
		if sc.remaining == 0 {
			sc.state = stateNormal
			sc.flag = ""
		}
		return arg, nil

	case stateAfterSentinel:
		if arg == "--" {
			return arg, nil
		}
		if sc.session.opts.ResolveAfterSentinel {
			return sc.session.rewritePath(arg)
		}
		return arg, nil
	}

	// Flags are always valid text; anything else can only be a path.
	if !utf8.ValidString(arg) {
		return sc.session.rewritePath(arg)
	}

	if n, ok := flagArity[arg]; ok {
		sc.state = stateFollowOn
		sc.flag = arg
		sc.remaining = n
		return arg, nil
	}

	if _, ok := terminalSentinels[arg]; ok {
		sc.state = stateAfterSentinel
		return arg, nil
	}

	// Other long flags take no values.
	if strings.HasPrefix(arg, "--") {
		return arg, nil
	}

	if strings.HasPrefix(arg, "-") {
		if len(arg) > 2 && strings.ContainsAny(arg[1:], arityShortLetters) {
			sc.session.logger.Warn("coalesced single letter flags with parameters are not handled cleanly", "arg", arg)
		}
		return arg, nil
	}

	return sc.session.rewritePath(arg)
}
