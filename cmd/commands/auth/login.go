package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/registrar/internal/platform/providers"
	"nathanbeddoewebdev/registrar/internal/services/auth"
	"nathanbeddoewebdev/registrar/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <provider>",
		Short: "Store API credentials for a registrar",
		Long: `Store API credentials for a registrar using the local keychain.

Values not supplied as flags are prompted for.

Examples:
  registrar auth login porkbun
  registrar auth login porkbun --apikey pk1_... --secretapikey sk1_...
  registrar auth login namecom --username alice --token ...`,
		Args: cobra.ExactArgs(1),
		Run:  runLogin,
	}

	seen := map[string]bool{}
	for _, spec := range providers.All() {
		for _, k := range spec.Keys {
			if seen[k.Key] {
				continue
			}
			seen[k.Key] = true
			cmd.Flags().String(k.Key, "", k.Prompt+" (optional, overrides prompt)")
		}
	}

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) {
	spec := providers.Lookup(args[0])
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown provider %q\n", args[0])
		return
	}

	values := make(map[string]string, len(spec.Keys))
	missing := false
	for _, k := range spec.Keys {
		v, _ := cmd.Flags().GetString(k.Key)
		v = strings.TrimSpace(v)
		if v == "" {
			missing = true
		}
		values[spec.KeychainKey(k)] = v
	}

	if missing {
		prompted, err := promptCredentials(cmd, *spec, values)
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
			return
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		values = prompted
	}

	if err := saveCredentials(auth.DefaultStore(), *spec, values); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved credentials for %s\n", spec.DisplayName)
}

// promptCredentials fills every empty value. Interactive terminals get a
// form; otherwise values are read line by line from stdin.
func promptCredentials(cmd *cobra.Command, spec providers.CredentialSpec, values map[string]string) (map[string]string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) && !tui.Accessible() {
		entered, err := tui.CredentialForm(spec)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			if v != "" {
				entered[k] = v
			}
		}
		return entered, nil
	}
	return readCredentials(cmd.InOrStdin(), cmd.OutOrStdout(), spec, values)
}

func readCredentials(in io.Reader, out io.Writer, spec providers.CredentialSpec, values map[string]string) (map[string]string, error) {
	r := bufio.NewReader(in)
	for _, k := range spec.Keys {
		key := spec.KeychainKey(k)
		if values[key] != "" {
			continue
		}

		fmt.Fprintf(out, "Enter %s %s: ", spec.DisplayName, k.Prompt)
		var line string
		if f, ok := in.(*os.File); ok && k.Secret && term.IsTerminal(int(f.Fd())) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(out)
			if err != nil {
				return nil, err
			}
			line = string(b)
		} else {
			s, err := r.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && s != "") {
				return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(k.Prompt), err)
			}
			line = s
		}

		values[key] = strings.TrimSpace(line)
		if values[key] == "" {
			return nil, fmt.Errorf("%s cannot be empty", strings.ToLower(k.Prompt))
		}
	}
	return values, nil
}

func saveCredentials(store auth.Store, spec providers.CredentialSpec, values map[string]string) error {
	for _, k := range spec.Keys {
		key := spec.KeychainKey(k)
		if err := store.SetToken(key, values[key]); err != nil {
			return fmt.Errorf("failed to store %s: %w", strings.ToLower(k.Prompt), err)
		}
	}
	return nil
}
