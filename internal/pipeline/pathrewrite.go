package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs lists the attributes that may reference local files.
var rewrittenAttrs = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// ResolveLocalPaths turns relative image sources and link targets into
// absolute file:// URLs under baseDir. PDF export renders from a temporary
// file, so relative references would otherwise resolve against the temp
// directory. Paths escaping baseDir, URLs, anchors and absolute paths are
// left untouched. An empty baseDir returns the HTML unchanged.
func ResolveLocalPaths(htmlContent, baseDir string) (string, error) {
	if baseDir == "" {
		return htmlContent, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	root, fragment, err := parseDocumentOrFragment(htmlContent)
	if err != nil {
		return "", err
	}
	walkLocalRefs(root, absBase)
	return renderNodes(root, fragment)
}

// parseDocumentOrFragment parses a full document, or a fragment in body
// context wrapped in a document node.
func parseDocumentOrFragment(content string) (root *html.Node, fragment bool, err error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		root, err = html.Parse(strings.NewReader(content))
		return root, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}
	root = &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, true, nil
}

func renderNodes(root *html.Node, fragment bool) (string, error) {
	var sb strings.Builder
	if !fragment {
		if err := html.Render(&sb, root); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func walkLocalRefs(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		if key, ok := rewrittenAttrs[n.DataAtom]; ok {
			for i := range n.Attr {
				if n.Attr[i].Key != key {
					continue
				}
				if resolved, ok := localFileURL(n.Attr[i].Val, base); ok {
					n.Attr[i].Val = resolved
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkLocalRefs(c, base)
	}
}

// localFileURL resolves ref against base. ok is false when ref is not a
// relative path or resolves outside base.
func localFileURL(ref, base string) (string, bool) {
	if !isRelativeRef(ref) {
		return "", false
	}
	abs := filepath.Clean(filepath.Join(base, ref))
	prefix := filepath.Clean(base)
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(abs+string(filepath.Separator), prefix) {
		return "", false
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), true
}

func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	for _, scheme := range []string{"http:", "https:", "file:", "data:", "mailto:"} {
		if strings.HasPrefix(strings.ToLower(ref), scheme) {
			return false
		}
	}
	return !filepath.IsAbs(ref)
}
