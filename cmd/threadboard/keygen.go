package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a random session key",
	Long: `Print a random key suitable for SESSION_KEY. Changing the key invalidates
every issued identity cookie, so visitors get a new user ID.`,
	RunE: runKeygen,
}

var keygenBytes int

func init() {
	keygenCmd.Flags().IntVarP(&keygenBytes, "bytes", "b", 32, "number of random bytes (hex encoded, so the key is twice as long)")
	rootCmd.AddCommand(keygenCmd)
}

func runKeygen(cmd *cobra.Command, args []string) error {
	if keygenBytes < 16 {
		return fmt.Errorf("key must be at least 16 bytes, got %d", keygenBytes)
	}
	key := securecookie.GenerateRandomKey(keygenBytes)
	if key == nil {
		return errors.New("error reading random bytes")
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
	return nil
}
