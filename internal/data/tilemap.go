package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tile values in a map file. Anything other than tileWater blocks ships.
const (
	tileWater byte = 0
)

// TileGrid is a walkability grid loaded from a CSV tile file.
// Row index is y, column index is x, both starting at 0.
type TileGrid struct {
	width  int
	height int
	tiles  []byte // flat array [y*width + x]
}

// LoadTileMap reads a tile file from disk.
func LoadTileMap(path string) (*TileGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tile map %s: %w", path, err)
	}
	defer f.Close()
	g, err := ParseTileMap(f)
	if err != nil {
		return nil, fmt.Errorf("tile map %s: %w", path, err)
	}
	return g, nil
}

// ParseTileMap reads comma-separated tile rows. Blank lines and lines starting
// with '#' are skipped. Every row must have the same width.
func ParseTileMap(r io.Reader) (*TileGrid, error) {
	g := &TileGrid{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		toks := strings.Split(line, ",")
		if g.width == 0 {
			g.width = len(toks)
		} else if len(toks) != g.width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", g.height, len(toks), g.width)
		}
		for x, tok := range toks {
			val, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", g.height, x, err)
			}
			g.tiles = append(g.tiles, byte(val))
		}
		g.height++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g.width == 0 || g.height == 0 {
		return nil, fmt.Errorf("empty tile map")
	}
	return g, nil
}

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

// Walkable reports whether (x, y) is open water. Out-of-bounds is not walkable.
func (g *TileGrid) Walkable(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.tiles[y*g.width+x] == tileWater
}
