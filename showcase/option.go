package showcase

const defaultSubject = "Default Parameters"

type Options struct {
	subject string
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		subject: defaultSubject,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

// WithSubject replaces the banner subject. An empty subject keeps the default.
func WithSubject(subject string) Option {
	return func(o *Options) {
		if subject != "" {
			o.subject = subject
		}
	}
}
