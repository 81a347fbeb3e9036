package markup

// newTextileConverter returns nil: no maintained Go Textile implementation
// exists to wire in, so the textile slot starts empty and textile input
// passes through unformatted. Callers that have a converter — a binding, a
// service call, anything satisfying [Converter] — plug it in themselves:
//
//	markup.Register(markup.Textile, conv)
//
// Go strings are UTF-8 throughout, so no charset configuration applies.
func newTextileConverter() Converter { return nil }
