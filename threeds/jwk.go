package threeds

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// TransformEphemeralPublicKey converts the engine's ephemeral public key from
// JWK JSON into the gateway's compact "{crv};{kty};{x};{y}" form. Only EC
// P-256 keys are accepted, and the coordinates are re-encoded as unpadded
// base64url so padded input normalizes.
func TransformEphemeralPublicKey(jwkJSON string) (string, error) {
	var jwk map[string]string
	if err := json.Unmarshal([]byte(jwkJSON), &jwk); err != nil {
		return "", &InvalidDataError{Message: "ephemeral public key is not valid JSON"}
	}

	kty, crv, x, y := jwk["kty"], jwk["crv"], jwk["x"], jwk["y"]
	if kty == "" || crv == "" || x == "" || y == "" {
		return "", &InvalidDataError{Message: "ephemeral public key is missing JWK fields (kty, crv, x, y)"}
	}
	if kty != "EC" || crv != "P-256" {
		return "", &InvalidDataError{Message: "unsupported key type: " + kty + " " + crv}
	}

	xEncoded, err := normalizeCoordinate(x)
	if err != nil {
		return "", err
	}
	yEncoded, err := normalizeCoordinate(y)
	if err != nil {
		return "", err
	}

	return crv + ";" + kty + ";" + xEncoded + ";" + yEncoded, nil
}

func normalizeCoordinate(coord string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(coord, "="))
	if err != nil {
		return "", &InvalidDataError{Message: "ephemeral public key coordinate is not valid base64url"}
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
