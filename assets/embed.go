package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt granted.txt
var FS embed.FS

func readLines(name string, keepBlank bool) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := sc.Text()
		if !keepBlank && (strings.TrimSpace(s) == "" || strings.HasPrefix(s, "#")) {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded dictionary, lowercased.
func WordList() ([]string, error) {
	lines, err := readLines("words.txt", false)
	for i, l := range lines {
		lines[i] = strings.ToLower(strings.TrimSpace(l))
	}
	return lines, err
}

// GrantedBanner returns the art shown when the terminal unlocks.
func GrantedBanner() ([]string, error) {
	return readLines("granted.txt", true)
}
