package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/changelog"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/debhelper"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/rules"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []any{
		NewLocalEditorRepository,
		rules.NewRulesRepository,
		debhelper.NewDhAssistant,
		debhelper.NewReleaseTable,
		debhelper.NewDebhelperRepository,
		changelog.NewChangelogRepository,
		git.NewRemoteRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *LocalEditorRepository) domainRepos.EditorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *rules.RulesRepository) domainRepos.RulesRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *debhelper.DebhelperRepository) domainRepos.DebhelperRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *changelog.ChangelogRepository) domainRepos.ChangelogRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.RemoteRepository) domainRepos.RemoteRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
