// Package project writes new projects to disk and installs their packages.
//
// # Materializing
//
// A Project copies a template tree (the embedded default, or a directory given
// with LoadTemplate) into a destination folder and then writes the generated
// scaffold documents on top of the copies. A preflight check runs first: if
// any file the run would create already exists, a *MaterializeError listing
// the conflicts is returned and nothing is written.
//
// # Installing
//
// An Installer runs "<manager> add" for production packages and
// "<manager> add -D" for development packages. Both steps always run; their
// failures are reported together in an *InstallError. Generated files are
// never removed, so a failed install can be retried by hand.
//
// # Usage Example
//
//	p := project.New(project.DefaultTemplate())
//	if err := p.Materialize("my-shop", scaffold.Plan(answers)); err != nil {
//		var me *project.MaterializeError
//		if errors.As(err, &me) && len(me.Conflicts) > 0 {
//			fmt.Println("refusing to overwrite:", me.Conflicts)
//		}
//		return err
//	}
//
//	installer := project.NewInstaller("npm", nil)
//	return installer.Install(ctx, "my-shop", consts.DefaultProdPackages, consts.DefaultDevPackages)
package project
