package components

import (
	"fmt"
	"strings"
)

// Layer tags a collider for filtered queries. Each layer is one bit.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerPlayer
	LayerCollectible
)

// LayerMask selects a set of layers.
type LayerMask uint32

// AllLayers matches every collider.
const AllLayers LayerMask = ^LayerMask(0)

func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= LayerMask(l)
	}
	return m
}

func (m LayerMask) Contains(l Layer) bool {
	return m&LayerMask(l) != 0
}

var layerNames = map[string]Layer{
	"default":     LayerDefault,
	"ground":      LayerGround,
	"player":      LayerPlayer,
	"collectible": LayerCollectible,
}

// ParseLayer maps a level-file layer name to its Layer.
func ParseLayer(name string) (Layer, error) {
	if name == "" {
		return LayerDefault, nil
	}
	l, ok := layerNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("components: unknown layer %q", name)
	}
	return l, nil
}
