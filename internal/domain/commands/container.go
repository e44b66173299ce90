package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewEnsureDebhelperCommand,
		NewCompatCommand,
		NewBuildDepCommand,
		NewMaintainerCommand,
		NewVcsCommand,
		NewDhWithCommand,
		NewDhArgumentCommand,
		NewPruneOverridesCommand,
		NewWrapAndSortCommand,
		NewInfoCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []any{
		func(impl *EnsureDebhelperCommand) EnsureDebhelper { return impl },
		func(impl *CompatCommand) Compat { return impl },
		func(impl *BuildDepCommand) BuildDep { return impl },
		func(impl *MaintainerCommand) Maintainer { return impl },
		func(impl *VcsCommand) Vcs { return impl },
		func(impl *DhWithCommand) DhWith { return impl },
		func(impl *DhArgumentCommand) DhArgument { return impl },
		func(impl *PruneOverridesCommand) PruneOverrides { return impl },
		func(impl *WrapAndSortCommand) WrapAndSort { return impl },
		func(impl *InfoCommand) Info { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
