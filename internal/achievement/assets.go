package achievement

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultRewardExts lists the asset extensions picked up by LoadAssets.
var DefaultRewardExts = []string{".gif", ".png", ".jpg"}

// LoadAssets lists reward asset file names in dir, sorted by name. A
// missing directory yields no assets.
func LoadAssets(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultRewardExts
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read reward directory: %w", err)
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	assets := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		assets = append(assets, name)
	}
	sort.Strings(assets)
	return assets, nil
}
