// Package markup extracts leveled feature lists from the provider's
// semi-structured class pages. Pages are parsed with golang.org/x/net/html;
// the extraction walks the first feature table and resolves each
// in-document anchor to its description section.
package markup

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
)

// PlaceholderDescription is emitted when an anchor resolves to no
// description content at all. Extraction never aborts over a single
// missing section.
const PlaceholderDescription = "<p>No description available.</p>"

var leadingIntPattern = regexp.MustCompile(`^\s*(\d+)`)

type featureKey struct {
	name  string
	level int
}

// ParseFeatures walks the document's first structural table and
// returns the deduplicated, order-preserving feature list.
//
// Each body row contributes its leading integer as the required level
// (default 1) and every in-document anchor link in its last cell as a
// candidate feature. The same (name, level) pair is emitted once; the
// same name at a different level is a separate feature, since classes
// re-grant refined versions of a feature at higher levels.
func ParseFeatures(doc *html.Node) []vtt.Feature {
	features := make([]vtt.Feature, 0)

	table := findFirst(doc, atom.Table)
	if table == nil {
		slog.Warn("markup: no feature table found, returning empty feature list")
		return features
	}

	seen := make(map[featureKey]struct{})
	for _, row := range findAll(table, atom.Tr) {
		cells := childElements(row, atom.Td)
		if len(cells) == 0 {
			// header row
			continue
		}

		level := parseLevel(text(cells[0]))
		lastCell := cells[len(cells)-1]

		for _, link := range findAll(lastCell, atom.A) {
			href := attr(link, "href")
			if !strings.HasPrefix(href, "#") || len(href) < 2 {
				// only fragment references point at in-document sections
				continue
			}
			name := collapseWhitespace(text(link))
			if name == "" {
				continue
			}

			key := featureKey{name: name, level: level}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			features = append(features, vtt.Feature{
				Name:          name,
				Description:   resolveDescription(doc, strings.TrimPrefix(href, "#")),
				RequiredLevel: level,
			})
		}
	}

	return features
}

// parseLevel reads the leading integer of a level cell, defaulting to 1
func parseLevel(cell string) int {
	m := leadingIntPattern.FindStringSubmatch(cell)
	if m == nil {
		return 1
	}
	level, err := strconv.Atoi(m[1])
	if err != nil || level < 1 {
		return 1
	}
	return level
}

// resolveDescription locates the element carrying the anchor id and
// serializes its description content.
func resolveDescription(doc *html.Node, fragment string) string {
	target := findByID(doc, fragment)
	if target == nil {
		slog.Debug("markup: anchor has no matching element", "fragment", fragment)
		return PlaceholderDescription
	}

	rank := headingRank(target)
	if rank == 0 {
		// non-heading anchor: collect until the next heading of any rank
		rank = 7
	}

	siblings := FollowingSiblings(target, StopAtHeadingRank(rank))

	if rank <= 2 && containsSubHeading(siblings, rank) {
		// A top-level section that fans out into named sub-options
		// (subclass pages do this): keep only the leading summary
		// paragraphs, not the option-by-option detail.
		siblings = leadingSummary(siblings)
	}

	var parts []string
	for _, sib := range siblings {
		if !isBlock(sib) {
			continue
		}
		parts = append(parts, render(sib))
	}

	if len(parts) == 0 {
		slog.Debug("markup: anchor section has no description content", "fragment", fragment)
		return PlaceholderDescription
	}
	return strings.Join(parts, "\n")
}

// containsSubHeading reports whether any sibling is a heading below rank
func containsSubHeading(siblings []*html.Node, rank int) bool {
	for _, sib := range siblings {
		if r := headingRank(sib); r > rank {
			return true
		}
	}
	return false
}

// leadingSummary keeps the paragraphs before the first sub-heading or
// the first paragraph that starts enumerating specific sub-options.
func leadingSummary(siblings []*html.Node) []*html.Node {
	var out []*html.Node
	for _, sib := range siblings {
		if headingRank(sib) > 0 {
			break
		}
		if sib.DataAtom != atom.P {
			break
		}
		if strings.HasSuffix(strings.TrimSpace(text(sib)), ":") {
			break
		}
		out = append(out, sib)
	}
	return out
}

// render serializes a node back to markup
func render(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		// Render on an in-memory builder only fails on exotic node
		// types; fall back to plain text.
		return text(n)
	}
	return sb.String()
}
