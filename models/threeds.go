package models

// SDKContextData is the 3DS2 context blob attached to secured submissions.
// Rendering options and the challenge timeout are fixed protocol constants;
// the rest comes from the native transaction's authentication parameters.
type SDKContextData struct {
	DeviceRenderingOptionsIF string `json:"deviceRenderingOptionsIF"`
	DeviceRenderOptionsUI    string `json:"deviceRenderOptionsUI"`
	MaxTimeout               int    `json:"maxTimeout"`
	ReferenceNumber          string `json:"referenceNumber"`
	EphemPubKey              string `json:"ephemPubKey"`
	AppID                    string `json:"appID"`
	TransID                  string `json:"transID"`
	EncData                  string `json:"encData"`
}

// SdkChallengeData is the opaque challenge descriptor delivered in an
// SDK_CHALLENGE session state.
type SdkChallengeData struct {
	CardType             int    `json:"cardType"`
	ThreeDSServerTransID string `json:"threeDSServerTransID"`
	ThreeDSVersion       string `json:"threeDSVersion"`
	AuthenticationType   string `json:"authenticationType"`
	TransStatus          string `json:"transStatus,omitempty"`
	SdkTransID           string `json:"sdkTransID"`
	DsTransID            string `json:"dsTransID"`
	AcsTransID           string `json:"acsTransID,omitempty"`
	AcsRenderingType     string `json:"acsRenderingType"`
	AcsReferenceNumber   string `json:"acsReferenceNumber"`
	AcsSignedContent     string `json:"acsSignedContent"`
	AcsOperatorID        string `json:"acsOperatorID"`
	AcsChallengeMandated string `json:"acsChallengeMandated"`
}

// ChallengeParameters extracts the fields the native engine needs to present
// the challenge.
func (d *SdkChallengeData) ChallengeParameters() ChallengeParameters {
	return ChallengeParameters{
		ThreeDSServerTransactionID: d.ThreeDSServerTransID,
		AcsTransactionID:           d.AcsTransID,
		AcsRefNumber:               d.AcsReferenceNumber,
		AcsSignedContent:           d.AcsSignedContent,
	}
}

// AuthenticationResponse builds the final authentication submission from the
// challenge data.
func (d *SdkChallengeData) AuthenticationResponse() AuthenticationResponse {
	return AuthenticationResponse{
		AcsReferenceNumber:   d.AcsReferenceNumber,
		AcsTransID:           d.AcsTransID,
		ThreeDSVersion:       d.ThreeDSVersion,
		ThreeDSServerTransID: d.ThreeDSServerTransID,
		TransStatus:          d.TransStatus,
	}
}

// ChallengeParameters addresses one challenge at the ACS.
type ChallengeParameters struct {
	ThreeDSServerTransactionID string
	AcsTransactionID           string
	AcsRefNumber               string
	AcsSignedContent           string
}

// AuthenticationResponse is the final 3DS submission closing a challenge,
// whatever its outcome.
type AuthenticationResponse struct {
	AcsReferenceNumber   string `json:"acsReferenceNumber"`
	AcsTransID           string `json:"acsTransID,omitempty"`
	ThreeDSVersion       string `json:"threeDSVersion"`
	ThreeDSServerTransID string `json:"threeDSServerTransID"`
	TransStatus          string `json:"transStatus,omitempty"`
}

// RemoteScheme is one entry of the gateway's directory-server key list.
type RemoteScheme struct {
	Scheme        string `json:"scheme"`
	RID           string `json:"rid"`
	PublicKey     string `json:"publicKey"`
	RootPublicKey string `json:"rootPublicKey"`
}

// DirectoryServerSdkKeyListResponse wraps the remote scheme list.
type DirectoryServerSdkKeyListResponse struct {
	DirectoryServerSdkKeyList []RemoteScheme `json:"directoryServerSdkKeyList"`
}

// Scheme bundles the name, directory-server id and key material needed to
// start a 3DS2 transaction for one card network.
type Scheme struct {
	Name            string
	DirectoryServer string
	PublicKey       string
	RootCertificate string
}
