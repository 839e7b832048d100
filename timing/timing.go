// The timing package tracks per-frame time using SDL's high resolution
// performance counters. FrameStarted/FrameEnded are called by the engine
// loop; game code normally only reads DT and the fps helpers.
package timing

import (
	"github.com/veandco/go-sdl2/sdl"
)

var (
	perfFrequency float64

	frameStartCounter uint64
	deltaTime         float32
	elapsedTime       float64

	frameCount     uint64
	fpsAccumulator float32
	avgFps         float32
)

func Init() {

	perfFrequency = float64(sdl.GetPerformanceFrequency())

	// A sane default so the first frame doesn't see dt=0
	deltaTime = 1.0 / 60
}

func FrameStarted() {
	frameStartCounter = sdl.GetPerformanceCounter()
}

func FrameEnded() {

	frameEndCounter := sdl.GetPerformanceCounter()
	deltaTime = float32(float64(frameEndCounter-frameStartCounter) / perfFrequency)
	elapsedTime += float64(deltaTime)

	frameCount++
	fpsAccumulator += deltaTime

	// Refresh the average once a second
	if fpsAccumulator >= 1 {
		avgFps = float32(frameCount) / fpsAccumulator
		frameCount = 0
		fpsAccumulator = 0
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return deltaTime
}

// ElapsedTime returns the seconds passed since Init
func ElapsedTime() float64 {
	return elapsedTime
}

func GetAvgFPS() float32 {
	return avgFps
}
