package images

import "testing"

func TestExtract_MarkdownImages(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		url      string
		absolute bool
	}{
		{"relative", "![](./local.png)", "./local.png", false},
		{"absolute", "![](https://x/i.png)", "https://x/i.png", true},
		{"with alt", "![a cat](http://example.com/cat.jpg)", "http://example.com/cat.jpg", true},
		{"with title", `![cat](https://example.com/cat.jpg "A cat")`, "https://example.com/cat.jpg", true},
		{"root relative", "![](/images/a.png)", "/images/a.png", false},
		{"uppercase scheme", "![](HTTPS://EXAMPLE.COM/A.PNG)", "HTTPS://EXAMPLE.COM/A.PNG", true},
		{"angle brackets", "![](<https://x/i.png>)", "https://x/i.png", true},
		{"empty", "![]()", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Extract(tt.markdown)
			if len(refs) != 1 {
				t.Fatalf("len(Extract()) = %d, want 1", len(refs))
			}
			if refs[0].URL != tt.url {
				t.Errorf("URL = %q, want %q", refs[0].URL, tt.url)
			}
			if refs[0].IsAbsolute != tt.absolute {
				t.Errorf("IsAbsolute = %v, want %v", refs[0].IsAbsolute, tt.absolute)
			}
			if refs[0].LineNumber != 1 {
				t.Errorf("LineNumber = %d, want 1", refs[0].LineNumber)
			}
		})
	}
}

func TestExtract_HTMLImages(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		url      string
	}{
		{"double quotes", `<img src="https://x/a.png">`, "https://x/a.png"},
		{"single quotes", `<img alt='x' src='img/a.png' />`, "img/a.png"},
		{"uppercase", `<IMG SRC="https://x/b.png">`, "https://x/b.png"},
		{"spaced attribute", `<img width="10" src = "c.png">`, "c.png"},
		{"data-src ignored", `<img data-src="lazy.png" src="https://x/a.png">`, "https://x/a.png"},
		{"srcset ignored", `<img srcset="big.png 2x" src="small.png">`, "small.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Extract(tt.markdown)
			if len(refs) != 1 {
				t.Fatalf("len(Extract()) = %d, want 1", len(refs))
			}
			if refs[0].URL != tt.url {
				t.Errorf("URL = %q, want %q", refs[0].URL, tt.url)
			}
		})
	}
}

func TestExtract_OrderAndLines(t *testing.T) {
	markdown := "# Title\n" +
		`<img src="first.png"> and ![](https://x/second.png)` + "\n" +
		"text\n" +
		"![](third.png) ![](fourth.png)"

	refs := Extract(markdown)

	want := []struct {
		url  string
		line int
	}{
		{"first.png", 2},
		{"https://x/second.png", 2},
		{"third.png", 4},
		{"fourth.png", 4},
	}
	if len(refs) != len(want) {
		t.Fatalf("len(Extract()) = %d, want %d: %+v", len(refs), len(want), refs)
	}
	for i, w := range want {
		if refs[i].URL != w.url || refs[i].LineNumber != w.line {
			t.Errorf("refs[%d] = %s@%d, want %s@%d", i, refs[i].URL, refs[i].LineNumber, w.url, w.line)
		}
	}

	relative := Relative(refs)
	if len(relative) != 3 {
		t.Errorf("len(Relative()) = %d, want 3", len(relative))
	}
}

func TestExtract_NoImages(t *testing.T) {
	for _, markdown := range []string{"", "plain text", "[link](https://x)", "!not an image"} {
		if refs := Extract(markdown); len(refs) != 0 {
			t.Errorf("Extract(%q) = %+v, want none", markdown, refs)
		}
	}
}
