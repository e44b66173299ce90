package controllers

import (
	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewEnsureDebhelperController,
		NewCompatController,
		NewBuildDepController,
		NewMaintainerController,
		NewVcsController,
		NewDhWithController,
		NewDhArgumentController,
		NewPruneOverridesController,
		NewWrapAndSortController,
		NewInfoController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	ensureDebhelperController *EnsureDebhelperController,
	compatController *CompatController,
	buildDepController *BuildDepController,
	maintainerController *MaintainerController,
	vcsController *VcsController,
	dhWithController *DhWithController,
	dhArgumentController *DhArgumentController,
	pruneOverridesController *PruneOverridesController,
	wrapAndSortController *WrapAndSortController,
	infoController *InfoController,
) *[]entities.Controller {
	return &[]entities.Controller{
		ensureDebhelperController,
		compatController,
		buildDepController,
		maintainerController,
		vcsController,
		dhWithController,
		dhArgumentController,
		pruneOverridesController,
		wrapAndSortController,
		infoController,
	}
}
