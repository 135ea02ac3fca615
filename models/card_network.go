package models

// CardNetwork is a selectable (network name, network code) pair used when a
// card number matches more than one co-badged network.
type CardNetwork struct {
	Network string
	Code    string
}

// HandledContract scopes a network lookup to the contracts this session can
// actually route to.
type HandledContract struct {
	CardCode       string `json:"cardCode"`
	ContractNumber string `json:"contractNumber"`
}

// AvailableCardNetworksRequest asks the gateway which networks a card prefix
// can be routed through. CardNumber is a truncated prefix, never a full PAN.
type AvailableCardNetworksRequest struct {
	CardNumber       string            `json:"cardNumber"`
	HandledContracts []HandledContract `json:"handledContracts"`
}

// AvailableCardNetworksResponse reports the default and (for co-badged
// cards) alternative networks for a prefix.
type AvailableCardNetworksResponse struct {
	AlternativeNetwork     string `json:"alternativeNetwork,omitempty"`
	AlternativeNetworkCode string `json:"alternativeNetworkCode,omitempty"`
	DefaultNetwork         string `json:"defaultNetwork,omitempty"`
	DefaultNetworkCode     string `json:"defaultNetworkCode,omitempty"`
	SelectedContractNumber string `json:"selectedContractNumber,omitempty"`
}

// DefaultCardNetwork returns the default network pair, or nil if the
// response names none.
func (r *AvailableCardNetworksResponse) DefaultCardNetwork() *CardNetwork {
	if r.DefaultNetwork == "" || r.DefaultNetworkCode == "" {
		return nil
	}
	return &CardNetwork{Network: r.DefaultNetwork, Code: r.DefaultNetworkCode}
}

// AlternativeCardNetwork returns the co-badged alternative, or nil.
func (r *AvailableCardNetworksResponse) AlternativeCardNetwork() *CardNetwork {
	if r.AlternativeNetwork == "" || r.AlternativeNetworkCode == "" {
		return nil
	}
	return &CardNetwork{Network: r.AlternativeNetwork, Code: r.AlternativeNetworkCode}
}
