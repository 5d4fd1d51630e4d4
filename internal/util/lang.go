package util

import (
	"path/filepath"
	"strings"
)

var extensionLanguages = map[string]string{
	".go":     "Go",
	".js":     "JavaScript",
	".jsx":    "JavaScript",
	".ts":     "TypeScript",
	".tsx":    "TypeScript",
	".py":     "Python",
	".rb":     "Ruby",
	".java":   "Java",
	".kt":     "Kotlin",
	".rs":     "Rust",
	".c":      "C",
	".h":      "C",
	".cpp":    "C++",
	".cc":     "C++",
	".hpp":    "C++",
	".cs":     "C#",
	".php":    "PHP",
	".swift":  "Swift",
	".scala":  "Scala",
	".sh":     "Shell",
	".sql":    "SQL",
	".html":   "HTML",
	".css":    "CSS",
	".scss":   "CSS",
	".vue":    "Vue",
	".svelte": "Svelte",
}

// DetectLanguages maps file extensions to language names, keeping the
// order of first occurrence and dropping duplicates. Unknown extensions
// contribute nothing.
func DetectLanguages(paths []string) []string {
	seen := make(map[string]bool, len(extensionLanguages))
	var languages []string

	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		lang, ok := extensionLanguages[ext]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		languages = append(languages, lang)
	}
	return languages
}

var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".pdf": true, ".zip": true, ".gz": true, ".tar": true, ".exe": true,
	".so": true, ".dylib": true, ".dll": true, ".woff": true, ".woff2": true,
	".ttf": true, ".eot": true, ".mp3": true, ".mp4": true, ".webm": true,
	".lock": true, ".bin": true, ".class": true, ".jar": true, ".wasm": true,
}

// ShouldIngest reports whether a file path belongs in the analyzed set.
func ShouldIngest(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if skippedDirs[part] {
			return false
		}
	}
	return !binaryExtensions[strings.ToLower(filepath.Ext(path))]
}
