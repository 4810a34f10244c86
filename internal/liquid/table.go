// Package liquid finds dev.to liquid tags in markdown and rewrites them into
// portable markdown or HTML.
package liquid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/taigrr/devto-mcp/internal/uri"
)

// Converter turns a tag's trimmed argument and, for block tags, its trimmed
// inner content into portable text.
type Converter func(argument, content string) string

// Definition describes a known liquid tag.
type Definition struct {
	Name string
	// CrossPostSafe is true when the converted output keeps the meaning of
	// the rendered tag on a generic markdown target.
	CrossPostSafe bool
	Convert       Converter
}

var definitions = map[string]Definition{}

func init() {
	register(false, passThrough, "embed", "codepen", "codesandbox", "stackblitz", "jsfiddle", "replit", "glitch", "gist")
	register(true, selfLink, "link")
	register(false, mention, "user")
	register(false, hashtag, "tag")
	register(true, gitHubLink, "github")
	register(true, wrap(uri.YouTubeWatch), "youtube")
	register(true, wrap(uri.VimeoVideo), "vimeo")
	register(true, wrap(uri.TwitterStatus), "twitter", "tweet")
	register(true, details, "details", "spoiler", "collapsible")
	register(true, displayMath, "katex")
	register(true, raw, "raw")
}

func register(safe bool, convert Converter, names ...string) {
	for _, name := range names {
		definitions[name] = Definition{Name: name, CrossPostSafe: safe, Convert: convert}
	}
}

// Known looks up the definition of a tag name.
func Known(name string) (Definition, bool) {
	def, ok := definitions[strings.ToLower(name)]
	return def, ok
}

// IsCrossPostSafe reports whether a tag survives cross-posting. Unknown tags
// are never safe.
func IsCrossPostSafe(name string) bool {
	def, ok := Known(name)
	return ok && def.CrossPostSafe
}

// Names returns all known tag names, sorted.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func passThrough(argument, _ string) string {
	return argument
}

func selfLink(argument, _ string) string {
	if argument == "" {
		return ""
	}
	return fmt.Sprintf("[%s](%s)", argument, argument)
}

func mention(argument, _ string) string {
	name := strings.TrimPrefix(argument, "@")
	if name == "" {
		return ""
	}
	return "@" + name
}

func hashtag(argument, _ string) string {
	name := strings.TrimPrefix(argument, "#")
	if name == "" {
		return ""
	}
	return "#" + name
}

func gitHubLink(argument, _ string) string {
	fields := strings.Fields(argument)
	if len(fields) == 0 {
		return ""
	}
	return fmt.Sprintf("[%s](%s)", fields[0], uri.GitHub(fields[0]))
}

func wrap(build func(string) string) Converter {
	return func(argument, _ string) string {
		if argument == "" {
			return ""
		}
		return build(argument)
	}
}

func details(argument, content string) string {
	return fmt.Sprintf("<details><summary>%s</summary>\n\n%s\n\n</details>", argument, content)
}

func displayMath(argument, content string) string {
	if argument == "inline" {
		return "$" + content + "$"
	}
	return "$$\n" + content + "\n$$"
}

func raw(_, content string) string {
	return content
}
