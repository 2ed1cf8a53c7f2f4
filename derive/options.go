package derive

//Option customizes plan compilation
type Option func(o *options)

//Options represents plan options
type Options []Option

//Apply applies options
func (o Options) Apply(opts *options) {
	for _, opt := range o {
		opt(opts)
	}
}

type options struct {
	tagName string
}

//WithTag overrides the struct tag name controlling field conversion
func WithTag(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

func newOptions(opts []Option) *options {
	ret := &options{tagName: TagName}
	Options(opts).Apply(ret)
	return ret
}
