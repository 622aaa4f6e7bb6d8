// Package hotkeys recognizes a single keyboard shortcut on a stream of
// key-down events.
//
// A shortcut is a Combination of exactly one common key plus zero or more of
// the modifiers meta, shift, alt and control. The Engine validates the
// combination once in Init, attaches one key-down listener to the host's
// Target, and notifies the host when an event carries the common key with
// exactly the required modifiers held. Holding a modifier the combination
// does not require voids the match.
//
// # Lifecycle
//
//	Inactive --Init (valid combination)--> Active --Destroy--> Inactive
//
// Events are only handled while Active. A validation failure leaves the
// engine Inactive for good; build a new Engine with a corrected combination.
//
// # Host Integration
//
// The engine reads everything through an Adapter. The disabled flag and the
// notification sink are consulted on every event; the combination is read
// and validated once, in Init.
//
//	eng := hotkeys.New(hotkeys.AdapterFuncs{
//	    ListenerTargetFunc: func() hotkeys.Target { return surface },
//	    HotKeysFunc:        func() []string { return []string{"control", "k"} },
//	    NotifyClickFunc:    openPalette,
//	})
//	if err := eng.Init(); err != nil {
//	    return err
//	}
//	defer eng.Destroy()
//
// The engine is not safe for concurrent use. Hosts deliver events and call
// Init and Destroy from a single goroutine.
package hotkeys
