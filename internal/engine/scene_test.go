package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLevelScene mirrors a tiny level: a floor and two collectible cubes.
func newLevelScene() (*Scene, []*GameObject) {
	s := NewScene("level")
	floor := NewGameObject("Floor")
	floor.Tags = []string{"Ground"}
	a := NewGameObject("Cube01")
	a.Tags = []string{"Collectible"}
	b := NewGameObject("Cube02")
	b.Tags = []string{"Collectible", "Bonus"}
	for _, g := range []*GameObject{floor, a, b} {
		s.AddGameObject(g)
	}
	return s, []*GameObject{floor, a, b}
}

func TestSceneLookups(t *testing.T) {
	s, objs := newLevelScene()
	floor, a, b := objs[0], objs[1], objs[2]

	require.Len(t, s.GameObjects, 3)
	assert.Same(t, s, floor.Scene)
	assert.Same(t, a, s.FindByUID(a.UID))
	assert.Nil(t, s.FindByUID(0))
	assert.Same(t, b, s.FindByName("Cube02"))
	assert.Nil(t, s.FindByName("Cube03"))

	assert.ElementsMatch(t, []*GameObject{a, b}, s.FindByTag("Collectible"))
	assert.Equal(t, []*GameObject{b}, s.FindByTag("Bonus"))
	assert.Empty(t, s.FindByTag("Player"))
}

func TestSceneRemove(t *testing.T) {
	s, objs := newLevelScene()
	a := objs[1]

	s.RemoveGameObject(a)
	assert.Len(t, s.GameObjects, 2)
	assert.Nil(t, s.FindByUID(a.UID))
	assert.Nil(t, a.Scene)
	assert.Len(t, s.FindByTag("Collectible"), 1)

	// removing twice is harmless
	s.RemoveGameObject(a)
	assert.Len(t, s.GameObjects, 2)
}

func TestSceneZeroValueAdd(t *testing.T) {
	var s Scene
	g := NewGameObject("Floor")
	s.AddGameObject(g)
	assert.Same(t, g, s.FindByUID(g.UID))
}

// despawner removes its owner from the scene on first update.
type despawner struct {
	BaseComponent
	updates int
}

func (d *despawner) Update(deltaTime float32) {
	d.updates++
	g := d.GetGameObject()
	g.Scene.RemoveGameObject(g)
}

func TestSceneUpdateToleratesRemoval(t *testing.T) {
	s, objs := newLevelScene()
	d := &despawner{}
	objs[0].AddComponent(d)
	counter := &countingComponent{}
	objs[2].AddComponent(counter)

	s.Start()
	s.Update(0.02)

	assert.Equal(t, 1, d.updates)
	assert.Equal(t, 1, counter.updates, "objects after the removed one still update")
	assert.Len(t, s.GameObjects, 2)
}
