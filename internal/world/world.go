// Package world builds the playable scene from a level file and draws it.
package world

import (
	"fmt"

	"gravityshift/internal/components"
	"gravityshift/internal/engine"
	"gravityshift/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const PlayerTag = "Player"

var (
	PlayerSize  = rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}
	PlayerColor = rl.Orange
)

type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Level   *Level

	Player       *engine.GameObject
	PlayerBody   *components.Rigidbody
	Animator     *components.CharacterAnimator
	Collectibles []*components.Collectible

	log *zap.Logger
}

func New(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewWorld(log),
		log:     log.Named("world"),
	}
}

// Build instantiates every level object through the component registry and
// spawns the player.
func (w *World) Build(level *Level) error {
	w.Level = level
	w.Scene.Name = level.Name

	for _, def := range level.Objects {
		g, err := buildObject(def)
		if err != nil {
			return err
		}
		w.add(g)
		if c := engine.GetComponent[*components.Collectible](g); c != nil {
			w.Collectibles = append(w.Collectibles, c)
		}
	}

	w.spawnPlayer(level.Spawn)
	w.Scene.Start()

	w.log.Info("level built",
		zap.String("level", level.Name),
		zap.Int("objects", len(w.Scene.GameObjects)),
		zap.Int("collectibles", len(w.Collectibles)))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = eulerDegrees(def.Rotation)
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, props := range def.Components {
		name, _ := props["type"].(string)
		comp, err := engine.CreateComponent(name, props)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.AddComponent(comp)
	}
	return g, nil
}

func (w *World) spawnPlayer(spawn SpawnDef) {
	g := engine.NewGameObject("Player")
	g.Tags = []string{PlayerTag}
	g.Transform.Position = vec3(spawn.Position)
	g.Transform.Rotation = eulerDegrees(spawn.Rotation)

	box := components.NewBoxCollider(PlayerSize)
	box.Layer = components.LayerPlayer
	g.AddComponent(box)

	rb := components.NewRigidbody()
	g.AddComponent(rb)

	g.AddComponent(components.NewMeshRenderer(components.MeshCube, PlayerColor, PlayerSize))

	anim := components.NewCharacterAnimator()
	g.AddComponent(anim)

	w.add(g)
	w.Player = g
	w.PlayerBody = rb
	w.Animator = anim
}

func (w *World) add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}

// Update runs component updates for one frame.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// FixedUpdate advances physics one step.
func (w *World) FixedUpdate(deltaTime float32) {
	w.Physics.Step(deltaTime)
}

// ObjectsOnLayer returns the level objects whose collider is on layer.
func (w *World) ObjectsOnLayer(layer components.Layer) []*engine.GameObject {
	var out []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if box := engine.GetComponent[*components.BoxCollider](g); box != nil && box.Layer == layer {
			out = append(out, g)
		}
	}
	return out
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// eulerDegrees builds a rotation from pitch (X), yaw (Y) and roll (Z) in
// degrees.
func eulerDegrees(e [3]float32) rl.Quaternion {
	if e == [3]float32{} {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromEuler(e[0]*rl.Deg2rad, e[1]*rl.Deg2rad, e[2]*rl.Deg2rad)
}
