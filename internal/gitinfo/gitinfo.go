// Package gitinfo answers version-control questions about a project root
// using go-git, without shelling out to a git binary.
//
// Every lookup degrades to an empty string instead of failing: a root that
// is not a repository, a repository without commits, and a history without
// tags all yield "". Label assembly treats these as ordinary empty values.
package gitinfo

import (
	git "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"

	"ocimeta/internal/logging"
)

// shortHashLen matches the abbreviated hash length used in image labels.
const shortHashLen = 7

// open locates the repository containing root. DetectDotGit walks up parent
// directories, so project roots nested inside a repository still resolve.
func open(root string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
}

// ShortRevision returns the abbreviated hash of the current HEAD commit, or
// "" when root is not under version control or has no commits.
func ShortRevision(root string) string {
	repo, err := open(root)
	if err != nil {
		logging.Debug("No git repository for revision lookup", "root", root, "error", err)
		return ""
	}

	head, err := repo.Head()
	if err != nil {
		logging.Debug("No HEAD commit for revision lookup", "root", root, "error", err)
		return ""
	}

	return head.Hash().String()[:shortHashLen]
}

// NearestTag returns the name of the closest tag reachable from HEAD,
// walking history from the current commit. Annotated tags are resolved to
// their target commits. Returns "" when there is no repository, no HEAD, or
// no tag on any reachable commit.
func NearestTag(root string) string {
	repo, err := open(root)
	if err != nil {
		logging.Debug("No git repository for tag lookup", "root", root, "error", err)
		return ""
	}

	head, err := repo.Head()
	if err != nil {
		return ""
	}

	tagged := taggedCommits(repo)
	if len(tagged) == 0 {
		return ""
	}

	log, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return ""
	}
	defer log.Close()

	var nearest string
	err = log.ForEach(func(commit *object.Commit) error {
		if name, ok := tagged[commit.Hash]; ok {
			nearest = name
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		logging.Debug("Tag walk aborted", "root", root, "error", err)
		return ""
	}
	return nearest
}

// taggedCommits maps commit hashes to tag names, resolving annotated tags
// to the commits they point at.
func taggedCommits(repo *git.Repository) map[plumbing.Hash]string {
	tags, err := repo.Tags()
	if err != nil {
		return nil
	}
	defer tags.Close()

	tagged := make(map[plumbing.Hash]string)
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if annotated, err := repo.TagObject(ref.Hash()); err == nil {
			target = annotated.Target
		}
		tagged[target] = ref.Name().Short()
		return nil
	})
	return tagged
}
