package audio

// Player loads and plays named sound assets. Any failure is fatal to
// the caller, so every operation that can fail returns an error.
type Player interface {
	Init() error
	Deinit()
	LoadWav(path string) error
	Play(path string) error
	UnloadFile(path string) error
	UpdateSourceStates()
}
