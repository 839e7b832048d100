package engine

// Game is the contract the engine loop drives every frame.
// Init runs once after the window and GL context exist, and DeInit runs
// once after ShouldRun first returns false
type Game interface {
	Init()
	Update()
	Render()
	FrameEnd()
	DeInit()
	ShouldRun() bool
}
