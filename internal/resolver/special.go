package resolver

import (
	"bufio"
	"bytes"
	"strings"

	"ocimeta/internal/gitinfo"
)

const (
	readmeSuffix = "/blob/main/README.md"
	docsRSBase   = "https://docs.rs/"
	pkgGoDevBase = "https://pkg.go.dev/"
	githubPrefix = "github.com/"
)

// invokeHandler dispatches a special-case extractor. Handlers are isolated:
// they share nothing but the resolver's ecosystem, manifest, and project
// root.
func (r *Resolver) invokeHandler(id handlerID) (string, error) {
	switch id {
	case handlerDocsFromRepo:
		return r.docsFromRepository()
	case handlerRustDocs:
		return r.rustDocs()
	case handlerGoName:
		module, err := r.modulePath()
		if err != nil || module == "" {
			return "", err
		}
		if idx := strings.LastIndexByte(module, '/'); idx >= 0 {
			return module[idx+1:], nil
		}
		return module, nil
	case handlerGoVersion:
		// go.mod has no version field; the nearest reachable tag stands in.
		tag := gitinfo.NearestTag(r.root)
		return strings.TrimPrefix(tag, "v"), nil
	case handlerGoHomepage, handlerGoRepository:
		module, err := r.modulePath()
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(module, githubPrefix) {
			return "", nil
		}
		return "https://" + module, nil
	case handlerGoDocs:
		module, err := r.modulePath()
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(module, githubPrefix) {
			return "", nil
		}
		return pkgGoDevBase + module, nil
	default:
		return "", nil
	}
}

// docsFromRepository points documentation at the repository's README on the
// default branch. Empty source means empty documentation.
func (r *Resolver) docsFromRepository() (string, error) {
	source, err := r.Resolve(Source)
	if err != nil || source == "" {
		return "", err
	}
	return source + readmeSuffix, nil
}

// rustDocs derives the docs.rs URL from the crate name.
func (r *Resolver) rustDocs() (string, error) {
	title, err := r.Resolve(Title)
	if err != nil || title == "" {
		return "", err
	}
	return docsRSBase + title, nil
}

// modulePath extracts the module directive from go.mod.
func (r *Resolver) modulePath() (string, error) {
	content, err := r.manifest.Content()
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) >= 2 && tokens[0] == "module" {
			// quoted module paths are rare but legal
			return strings.Trim(tokens[1], `"`), nil
		}
	}
	return "", scanner.Err()
}
