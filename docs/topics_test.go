package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// The readme is the table of contents: every topic it lists must load,
	// and every topic file must be listed.
	listed := readmeTopics(t)

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(listed, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestTopicsStartWithTitle(t *testing.T) {
	// Each topic must open with a level-1 heading so that concatenated
	// output ('clt topic *') stays navigable.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic: %v", err)
			}
			source := []byte(content)
			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			heading, ok := doc.FirstChild().(*ast.Heading)
			if !ok || heading.Level != 1 {
				t.Errorf("topic %q does not start with a level-1 heading", topic)
			}
		})
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("failed to expand '*': %v", err)
	}
	for _, topic := range []string{"ingest", "linking", "metrics"} {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("failed to get topic %q: %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("expanded output misses topic %q", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
