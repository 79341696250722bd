package platform

import (
	"sync"

	"wukong-go/errcode"
	"wukong-go/x/conv"
)

// Registry hands out exclusive ownership of buses and pins. A second claim
// on a held resource fails until the holder releases it.
type Registry struct {
	mu     sync.Mutex
	owners map[string]string // resource key -> device ID
}

func busKey(id string) string { return "bus:" + id }
func pinKey(pin int) string   { return "pin:" + conv.Itoa(int64(pin)) }

// ClaimBus claims a shared bus (e.g. "i2c0") for devID.
func (r *Registry) ClaimBus(devID, id string) error {
	return r.claim(devID, busKey(id), errcode.BusInUse)
}

// ReleaseBus drops devID's claim on a bus. Releasing a bus devID does not
// hold is a no-op.
func (r *Registry) ReleaseBus(devID, id string) { r.release(devID, busKey(id)) }

// ClaimPin claims a pin for devID.
func (r *Registry) ClaimPin(devID string, pin int) error {
	return r.claim(devID, pinKey(pin), errcode.PinInUse)
}

// ReleasePin drops devID's claim on a pin.
func (r *Registry) ReleasePin(devID string, pin int) { r.release(devID, pinKey(pin)) }

// Owner reports who holds a resource key ("bus:i2c0", "pin:16").
func (r *Registry) Owner(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.owners[key]
	return id, ok
}

func (r *Registry) claim(devID, key string, inUse errcode.Code) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owners == nil {
		r.owners = make(map[string]string)
	}
	if owner, held := r.owners[key]; held {
		return &errcode.E{C: inUse, Op: "claim " + key, Msg: "held by " + owner}
	}
	r.owners[key] = devID
	return nil
}

func (r *Registry) release(devID, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owners[key] == devID {
		delete(r.owners, key)
	}
}
