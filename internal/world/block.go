package world

import "image/color"

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeBrick
	BlockTypeWool
	BlockTypeMossyCobblestone
	BlockTypeDiamond
	BlockTypeGold
	BlockTypeRedstone
)

// CityBlocks is the ordered category list the Voronoi populator maps cells onto.
// Order matters: reordering changes which block every cell receives.
var CityBlocks = []BlockType{
	BlockTypeStone,
	BlockTypeDirt,
	BlockTypeBrick,
	BlockTypeWool,
	BlockTypeMossyCobblestone,
	BlockTypeDiamond,
	BlockTypeGold,
	BlockTypeRedstone,
}

var blockNames = map[BlockType]string{
	BlockTypeAir:              "air",
	BlockTypeStone:            "stone",
	BlockTypeDirt:             "dirt",
	BlockTypeBrick:            "brick_block",
	BlockTypeWool:             "wool",
	BlockTypeMossyCobblestone: "mossy_cobblestone",
	BlockTypeDiamond:          "diamond_block",
	BlockTypeGold:             "gold_block",
	BlockTypeRedstone:         "redstone_block",
}

// String returns the block's registry name.
func (b BlockType) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// GetBlockColor returns the preview color for a block type
func GetBlockColor(b BlockType) color.RGBA {
	switch b {
	case BlockTypeStone:
		return color.RGBA{125, 125, 125, 255}
	case BlockTypeDirt:
		return color.RGBA{134, 96, 67, 255}
	case BlockTypeBrick:
		return color.RGBA{150, 74, 59, 255}
	case BlockTypeWool:
		return color.RGBA{233, 236, 236, 255}
	case BlockTypeMossyCobblestone:
		return color.RGBA{90, 108, 80, 255}
	case BlockTypeDiamond:
		return color.RGBA{98, 219, 214, 255}
	case BlockTypeGold:
		return color.RGBA{246, 208, 61, 255}
	case BlockTypeRedstone:
		return color.RGBA{175, 24, 5, 255}
	default:
		return color.RGBA{0, 0, 0, 0} // Air
	}
}
