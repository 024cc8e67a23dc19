package naming

import (
	"path/filepath"
	"strings"
)

// Applied in order; later rules see the output of earlier ones.
var replacements = []struct{ old, new string }{
	{`"`, ""},
	{"-", "_"},
	{"é", "e"},
	{"à", "a"},
	{"è", "e"},
	{",", "_"},
	{" ", ""},
	{"(", ""},
	{")", ""},
}

// Normalize returns the sanitized stem of path. It never fails: a path with no
// usable file name yields the empty string.
func Normalize(path string) string {
	name := stem(path)
	for _, r := range replacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}
	return name
}

// stem is the final path element without its extension. A leading dot does not
// start an extension, so ".profile" keeps its full name.
func stem(path string) string {
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	if strings.LastIndex(base, ".") <= 0 {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath is the location of the artifact produced by effect for the
// normalized name.
func OutputPath(dir, name, effect string) string {
	return filepath.Join(dir, name+"_"+effect+".jpg")
}
