package grpcclient

// EmptyMsg is the request of the operations that do not carry any argument.
type EmptyMsg struct{}

// AckMsg is the response of the operations that only acknowledge.
type AckMsg struct{}

// RootMsg is the current root of the server log. The signature is optional
// and covers the serialized root.
type RootMsg struct {
	Index     uint64 `json:"index"`
	Hash      []byte `json:"hash"`
	Signature []byte `json:"signature,omitempty"`
}

// KeyMsg is the request of a plain read.
type KeyMsg struct {
	Key []byte `json:"key"`
}

// KVMsg is a single key/value pair.
type KVMsg struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// BatchMsg is an ordered list of key/value pairs written in one request.
type BatchMsg struct {
	KVs []KVMsg `json:"kvs"`
}

// ItemMsg is a key/value pair annotated with its position in the log.
type ItemMsg struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
	Index uint64 `json:"index"`
}

// ProofMsg is the evidence that an item belongs to the log and that the
// claimed state extends a previous one.
type ProofMsg struct {
	Leaf            []byte   `json:"leaf"`
	Index           uint64   `json:"index"`
	At              uint64   `json:"at"`
	Root            []byte   `json:"root"`
	InclusionPath   [][]byte `json:"inclusionPath"`
	ConsistencyPath [][]byte `json:"consistencyPath"`
}

// SafeGetMsg is the request of a verified read. It carries the index of the
// root trusted by the client so the server can anchor the proof.
type SafeGetMsg struct {
	Key       []byte `json:"key"`
	RootIndex uint64 `json:"rootIndex"`
}

// SafeItemMsg is the response of a verified read.
type SafeItemMsg struct {
	Item  ItemMsg  `json:"item"`
	Proof ProofMsg `json:"proof"`
}

// SafeSetMsg is the request of a verified write.
type SafeSetMsg struct {
	Key       []byte `json:"key"`
	Value     []byte `json:"value"`
	RootIndex uint64 `json:"rootIndex"`
}

// LoginMsg is the request to authenticate a session.
type LoginMsg struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// TokenMsg is the credential returned after a successful login.
type TokenMsg struct {
	Token string `json:"token"`
}
