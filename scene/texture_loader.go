package scene

type textureResult struct {
	texture *Texture
	err     error
	onLoad  func(*Texture)
	onError func(error)
}

// AsyncTextureLoader decodes textures off the main goroutine. Callbacks
// run only inside Poll or Wait, on the goroutine that calls them.
type AsyncTextureLoader struct {
	decode  func(path string) (*Texture, error)
	results chan textureResult
	pending int
}

func NewAsyncTextureLoader() *AsyncTextureLoader {
	return &AsyncTextureLoader{
		decode:  LoadTexture,
		results: make(chan textureResult, 16),
	}
}

// Load starts decoding path. Exactly one of onLoad or onError fires
// during a later Poll.
func (l *AsyncTextureLoader) Load(path string, onLoad func(*Texture), onError func(error)) {
	l.pending++
	go func() {
		tex, err := l.decode(path)
		l.results <- textureResult{texture: tex, err: err, onLoad: onLoad, onError: onError}
	}()
}

// Poll delivers finished loads without blocking and returns how many fired.
func (l *AsyncTextureLoader) Poll() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.deliver(r)
			n++
		default:
			return n
		}
	}
}

// Pending reports loads started but not yet delivered.
func (l *AsyncTextureLoader) Pending() int {
	return l.pending
}

// Wait blocks until every started load has been delivered.
func (l *AsyncTextureLoader) Wait() {
	for l.pending > 0 {
		l.deliver(<-l.results)
	}
}

func (l *AsyncTextureLoader) deliver(r textureResult) {
	l.pending--
	if r.err != nil {
		if r.onError != nil {
			r.onError(r.err)
		}
		return
	}
	if r.onLoad != nil {
		r.onLoad(r.texture)
	}
}
