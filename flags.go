package wc

// Options selects the counts printed for each source.
type Options struct {
	Lines bool
	Words bool
	Chars bool
}

func DefaultOptions() Options {
	return Options{
		Lines: true,
		Words: true,
		Chars: true,
	}
}

func (o Options) IsZero() bool {
	return !o.Lines && !o.Words && !o.Chars
}

func (o *Options) set(c byte) error {
	switch c {
	case 'c':
		o.Chars = true
	case 'w':
		o.Words = true
	case 'l':
		o.Lines = true
	default:
		return &UsageError{Option: c}
	}
	return nil
}

type parseState int8

const (
	scanOptions parseState = iota
	scanNames
)

// Parse splits args into the selected options and the list of source names.
//
// Leading arguments starting with a dash are option clusters. The first
// argument that does not start with a dash ends option parsing: it and every
// argument after it are names, even when they look like options. A bare "-"
// seen while still reading options is an empty cluster.
func Parse(args []string) (Options, []string, error) {
	var (
		opts  Options
		names []string
		state = scanOptions
	)
	for _, a := range args {
		if state == scanOptions && (len(a) == 0 || a[0] != '-') {
			state = scanNames
		}
		if state == scanNames {
			names = append(names, a)
			continue
		}
		for i := 1; i < len(a); i++ {
			if err := opts.set(a[i]); err != nil {
				return opts, nil, err
			}
		}
	}
	if opts.IsZero() {
		opts = DefaultOptions()
	}
	return opts, names, nil
}
