// pkg/core/mapinfo.go
package core

// RaidDuration holds day and night raid lengths in minutes.
type RaidDuration struct {
	Day   int `json:"day"`
	Night int `json:"night"`
}

// MapSVG describes the official dataset's rendering metadata for a map.
// Bounds holds two opposite game-space corners as [x, y] pairs.
type MapSVG struct {
	File               string      `json:"file"`
	Bounds             [][]float64 `json:"bounds"`
	CoordinateRotation int         `json:"coordinateRotation"`
}

// MapInfo is one record of the official dataset's maps.json.
type MapInfo struct {
	ID           int               `json:"id"`
	Locale       map[string]string `json:"locale"`
	SVG          MapSVG            `json:"svg"`
	Enemies      []string          `json:"enemies"`
	RaidDuration RaidDuration      `json:"raidDuration"`
	Description  string            `json:"description"`
	Wiki         string            `json:"wiki"`
}

// EnglishName returns the dataset's English display name, or "" if absent.
func (m MapInfo) EnglishName() string {
	return m.Locale["en"]
}
