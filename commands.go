package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"themeplane/editor"
	"themeplane/model"
	"themeplane/theme"
)

var assumeYes bool

// promptConfirmer asks on the command's stdin unless --yes was given.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
	yes bool
}

func (p promptConfirmer) Confirm(action string) bool {
	if p.yes {
		return true
	}
	fmt.Fprintf(p.out, "%s? [y/N] ", action)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func confirmer(cmd *cobra.Command) editor.Confirmer {
	return promptConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), yes: assumeYes}
}

// parseAssignments turns field=value arguments into a patch.
func parseAssignments(args []string) (map[string]string, error) {
	patch := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		patch[k] = v
	}
	return patch, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// withApp opens the stores, runs fn and closes them.
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, a, args)
	}
}

func addStyleCommands(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Confirm destructive actions without prompting")

	themeCmd := &cobra.Command{Use: "theme", Short: "Inspect and edit the storefront theme"}
	themeCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the active theme with color swatches",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				fmt.Fprint(cmd.OutOrStdout(), theme.Preview(a.themes.Current()))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "json",
			Short: "Print the active theme as JSON",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				return printJSON(cmd.OutOrStdout(), a.themes.Current())
			}),
		},
		&cobra.Command{
			Use:   "css",
			Short: "Print the active theme as CSS custom properties",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				fmt.Fprint(cmd.OutOrStdout(), theme.CSS(theme.Variables(a.themes.Current())))
				return nil
			}),
		},
		&cobra.Command{
			Use:     "color <key>=<value>...",
			Short:   "Set one or more theme colors",
			Example: "  themeplane theme color accent=#D4AF37 buttonText=#0A0A0A",
			Args:    cobra.MinimumNArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				patch, err := parseAssignments(args)
				if err != nil {
					return err
				}
				e := editor.OpenTheme(a.themes)
				for k, v := range patch {
					if err := e.SetColor(k, v); err != nil {
						return err
					}
				}
				return commitAndPrint(cmd, e.Draft, e.Value().Colors)
			}),
		},
		&cobra.Command{
			Use:     "font <role> <field>=<value>...",
			Short:   "Set typography for a text role",
			Example: "  themeplane theme font h1 fontFamily=Lato fontWeight=800",
			Args:    cobra.MinimumNArgs(2),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				patch, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				role := model.TextRole(args[0])
				e := editor.OpenTheme(a.themes)
				for k, v := range patch {
					if err := e.SetTypography(role, k, v); err != nil {
						return err
					}
				}
				return commitAndPrint(cmd, e.Draft, e.Value().Typography[role])
			}),
		},
		&cobra.Command{
			Use:   "menu <overlay|sidepanel>",
			Short: "Set the mobile menu style",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				e := editor.OpenTheme(a.themes)
				if err := e.SetMobileMenuStyle(model.MobileMenuStyle(args[0])); err != nil {
					return err
				}
				return commitAndPrint(cmd, e.Draft, e.Value().Navigation)
			}),
		},
		&cobra.Command{
			Use:     "set <section> <json>",
			Short:   "Merge a JSON object into one theme section",
			Example: `  themeplane theme set colors '{"accent":"#C0C0C0"}'`,
			Args:    cobra.ExactArgs(2),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				section, err := theme.ParseSection(args[0])
				if err != nil {
					return err
				}
				updated, err := a.themes.Update(section, json.RawMessage(args[1]))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), updated)
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset the theme to its defaults",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				e := editor.OpenTheme(a.themes)
				if err := e.Reset(confirmer(cmd)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "theme reset to defaults")
				return nil
			}),
		},
	)

	buttonCmd := &cobra.Command{Use: "button", Short: "Inspect and edit button styles"}
	buttonCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List button styles",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				return printJSON(cmd.OutOrStdout(), a.buttons.All())
			}),
		},
		&cobra.Command{
			Use:   "show <key>",
			Short: "Print one button style",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				b, err := a.buttons.Get(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), b)
			}),
		},
		&cobra.Command{
			Use:   "set <key> <field>=<value>...",
			Short: "Change fields of a button style",
			Long:  "Change fields of a button style. Fields: " + strings.Join(editor.ButtonFields, ", ") + ".",
			Args:  cobra.MinimumNArgs(2),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				patch, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				e, err := editor.OpenButton(a.buttons, a.themes, args[0])
				if err != nil {
					return err
				}
				if err := e.Apply(patch); err != nil {
					return err
				}
				return commitAndPrint(cmd, e.Draft, e.Value())
			}),
		},
		&cobra.Command{
			Use:   "preset <key> <solid|outline|ghost|glass|gradient>",
			Short: "Apply a preset to a button, keeping its padding",
			Args:  cobra.ExactArgs(2),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				e, err := editor.OpenButton(a.buttons, a.themes, args[0])
				if err != nil {
					return err
				}
				if err := e.SelectPreset(model.ButtonPreset(args[1])); err != nil {
					return err
				}
				return commitAndPrint(cmd, e.Draft, e.Value())
			}),
		},
		&cobra.Command{
			Use:   "apply-all <key> [<field>=<value>...]",
			Short: "Copy a button's style to every buy-now button",
			Args:  cobra.MinimumNArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				patch, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				e, err := editor.OpenButton(a.buttons, a.themes, args[0])
				if err != nil {
					return err
				}
				defer e.Discard()
				if err := e.Apply(patch); err != nil {
					return err
				}
				changed, err := e.ApplyToAll(confirmer(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", strings.Join(changed, ", "))
				return nil
			}),
		},
	)

	cardCmd := &cobra.Command{Use: "card", Short: "Inspect and edit card styles"}
	cardCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List card styles",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
				return printJSON(cmd.OutOrStdout(), a.cards.All())
			}),
		},
		&cobra.Command{
			Use:   "show <key>",
			Short: "Print one card style",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				c, err := a.cards.Get(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c)
			}),
		},
		&cobra.Command{
			Use:   "set <key> <field>=<value>...",
			Short: "Change fields of a card style",
			Long:  "Change fields of a card style. Fields: " + strings.Join(editor.CardFields, ", ") + ".",
			Args:  cobra.MinimumNArgs(2),
			RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
				patch, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				e, err := editor.OpenCard(a.cards, args[0])
				if err != nil {
					return err
				}
				if err := e.Apply(patch); err != nil {
					return err
				}
				return commitAndPrint(cmd, e.Draft, e.Value())
			}),
		},
	)

	root.AddCommand(themeCmd, buttonCmd, cardCmd)
}

// committer is the part of an editor draft the CLI commits through.
type committer interface {
	Dirty() bool
	Commit() error
	Discard()
}

func commitAndPrint(cmd *cobra.Command, d committer, result any) error {
	if !d.Dirty() {
		d.Discard()
		fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}
	if err := d.Commit(); err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}
