/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package genkeyscmd

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/laysakura/vc-issuer-mock/pkg/did"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/kms"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/key"
)

const (
	keyTypesFlagName  = "key-types"
	keyTypesEnvKey    = "VC_ISSUER_GEN_KEY_TYPES"
	keyTypesFlagUsage = "Comma-separated list of key types to generate. Supported: RSAPS256, ECDSAP256IEEEP1363, " +
		"ECDSAP384IEEEP1363, ED25519. Defaults to RSAPS256,ECDSAP384IEEEP1363,ED25519. " +
		"Alternatively, this can be set with the following environment variable: " + keyTypesEnvKey
)

// GeneratedKey is one generated issuer key pair.
type GeneratedKey struct {
	PrivateKey *jwk.JWK `json:"privateKey"`
	PublicKey  *jwk.JWK `json:"publicKey"`
	DID        string   `json:"did,omitempty"`
	KeyID      string   `json:"keyId,omitempty"`
}

// GetGenKeysCmd returns the Cobra command printing freshly generated issuer keys.
func GetGenKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-keys",
		Short: "Generate issuer keys",
		Long:  "Generate issuer private keys and print them with their public keys and did:key identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyTypes, err := key.ParseKeyTypes(
				cmdutils.GetUserSetOptionalCSVVar(cmd, keyTypesFlagName, keyTypesEnvKey))
			if err != nil {
				return err
			}

			keys, err := generateKeys(keyTypes)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(keys, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal keys: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return err
		},
	}

	cmd.Flags().StringSlice(keyTypesFlagName, []string{}, keyTypesFlagUsage)

	return cmd
}

func generateKeys(keyTypes []arieskms.KeyType) ([]*GeneratedKey, error) {
	ks, err := kms.GenerateKeyStore(keyTypes...)
	if err != nil {
		return nil, err
	}

	keys := make([]*GeneratedKey, 0, ks.Len())

	for _, pair := range ks.KeyPairs() {
		k := &GeneratedKey{
			PrivateKey: pair.Private,
			PublicKey:  pair.Public,
		}

		if kty, _ := vc.KeyTypeOf(pair.Public); kty != vcsverifiable.KeyTypeRSA {
			k.DID, k.KeyID, err = did.KeyDID(pair.Public)
			if err != nil {
				return nil, err
			}
		}

		keys = append(keys, k)
	}

	return keys, nil
}
