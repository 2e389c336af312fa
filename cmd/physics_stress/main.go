// Stress test timing the ground and free-fall probes against growing levels
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"gravityshift/internal/components"
	"gravityshift/internal/engine"
	"gravityshift/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// probeDirs are the five free-fall rays in an unrotated body frame.
var probeDirs = []rl.Vector3{
	{Y: -1}, {X: 1}, {X: -1}, {Z: 1}, {Z: -1},
}

func main() {
	seed := flag.Int64("seed", 42, "random seed for block placement")
	iterations := flag.Int("n", 1000, "probe iterations per level size")
	flag.Parse()

	// Test various block counts
	testCounts := []int{10, 50, 100, 500, 1000, 5000}

	for _, count := range testCounts {
		testProbes(count, *iterations, rand.New(rand.NewSource(*seed)))
	}
}

func testProbes(count, iterations int, rng *rand.Rand) {
	world := physics.NewWorld(nil)
	mask := components.MaskOf(components.LayerGround)

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/10.0
	for i := 0; i < count; i++ {
		g := engine.NewGameObject(fmt.Sprintf("Block_%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		box := components.NewBoxCollider(rl.Vector3{
			X: 1 + rng.Float32()*4,
			Y: 1,
			Z: 1 + rng.Float32()*4,
		})
		box.Layer = components.LayerGround
		g.AddComponent(box)
		world.AddObject(g)
	}

	origins := make([]rl.Vector3, iterations)
	for i := range origins {
		origins[i] = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
	}

	// Ground sphere check
	sphereStart := time.Now()
	grounded := 0
	for _, o := range origins {
		if world.CheckSphere(o, 0.1, mask) {
			grounded++
		}
	}
	sphereTime := time.Since(sphereStart) / time.Duration(iterations)

	// Five-ray free-fall probe
	rayStart := time.Now()
	freeFalling := 0
	for _, o := range origins {
		hit := false
		for _, dir := range probeDirs {
			if world.RaycastAny(o, dir, 1000, mask) {
				hit = true
				break
			}
		}
		if !hit {
			freeFalling++
		}
	}
	rayTime := time.Since(rayStart) / time.Duration(iterations)

	fmt.Printf("%5d blocks: sphere %8v (%4d grounded) | probe %8v (%4d free falling)\n",
		count, sphereTime.Round(time.Nanosecond), grounded,
		rayTime.Round(time.Nanosecond), freeFalling)
}
