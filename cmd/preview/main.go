// Noise preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/preview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noisefield/field"
	"github.com/pthm-cable/noisefield/generator"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := generator.Default()
	params.Width = gridSize
	params.Height = gridSize
	params.Type = generator.PerlinFractal
	params.Scale = 0.02

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var current *field.Field
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			f, err := generator.Generate(params)
			if err == nil {
				current = f
				updateTexture(texture, current)
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		if current != nil {
			minV, maxV := minMax(current.Data)
			statsY := int32(previewSize + 25)
			rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f", minV, maxV), 15, statsY, 16, rl.DarkGray)
		}

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Noise Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Noise type slider
		rl.DrawText(fmt.Sprintf("Type: %s", params.Type), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newType := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"perlin", "gabor",
			float32(params.Type), float32(generator.Perlin), float32(generator.Gabor),
		)
		if generator.Type(newType) != params.Type {
			params.Type = generator.Type(newType)
			needsRegen = true
		}
		panelY += 35

		params, needsRegen = floatSlider(&panelY, panelX, "Scale (sample step)", params, needsRegen,
			params.Scale, 0.001, 0.2, "%.3f", func(p generator.Params, v float64) generator.Params {
				p.Scale = v
				return p
			})

		// Octaves slider
		rl.DrawText("Octaves (fractal detail)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newOctaves := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "8",
			float32(params.Octaves), 1, 8,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Octaves), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newOctaves) != params.Octaves {
			params.Octaves = int(newOctaves)
			needsRegen = true
		}
		panelY += 35

		params, needsRegen = floatSlider(&panelY, panelX, "Lacunarity (frequency multiplier)", params, needsRegen,
			params.Lacunarity, 1.5, 4.0, "%.2f", func(p generator.Params, v float64) generator.Params {
				p.Lacunarity = v
				return p
			})

		params, needsRegen = floatSlider(&panelY, panelX, "Gain (amplitude multiplier)", params, needsRegen,
			params.Gain, 0.2, 0.9, "%.2f", func(p generator.Params, v float64) generator.Params {
				p.Gain = v
				return p
			})

		params, needsRegen = floatSlider(&panelY, panelX, "Jitter (worley cell offset)", params, needsRegen,
			params.Jitter, 0, 4, "%.2f", func(p generator.Params, v float64) generator.Params {
				p.Jitter = v
				return p
			})

		// Worley cells slider
		rl.DrawText("Cells (worley)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCells := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", "256",
			float32(params.NumCells), 4, 256,
		)
		rl.DrawText(fmt.Sprintf("%d", params.NumCells), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newCells) != params.NumCells {
			params.NumCells = int(newCells)
			needsRegen = true
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if uint32(newSeed) != params.Seed {
			params.Seed = uint32(newSeed)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = uint32(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = generator.Default()
			params.Width = gridSize
			params.Height = gridSize
			params.Type = generator.PerlinFractal
			params.Scale = 0.02
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// floatSlider draws one labeled slider row and returns the updated
// params and regen flag.
func floatSlider(panelY *float32, panelX float32, label string, params generator.Params, needsRegen bool,
	value, minV, maxV float64, format string, apply func(generator.Params, float64) generator.Params) (generator.Params, bool) {

	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, minV), fmt.Sprintf(format, maxV),
		float32(value), float32(minV), float32(maxV),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35

	if float64(newValue) != value {
		return apply(params, float64(newValue)), true
	}
	return params, needsRegen
}

// updateTexture uploads the field as a min-max normalized grayscale image.
func updateTexture(texture rl.Texture2D, f *field.Field) {
	minV, maxV := minMax(f.Data)
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	pixels := make([]color.RGBA, len(f.Data))
	for i, v := range f.Data {
		g := uint8((v - minV) / span * 255)
		pixels[i] = color.RGBA{R: g, G: g, B: g, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

func minMax(data []float32) (float32, float32) {
	minV, maxV := data[0], data[0]
	for _, v := range data {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}
