// Package theme manages visual-preference state for the app shell.
//
// The core type is Pref[T], a persisted preference value with
// last-write-wins merging across devices or tabs. The package also
// defines the Theme preference (light, dark, system) that the shell's
// theme toggle drives:
//
//	th := theme.NewThemePref()
//	th.Set(theme.Dark)
//	class := th.Get().Class() // "theme-dark"
//
// Merging uses update timestamps: ApplyRemote keeps whichever side
// wrote last, so a stale tab cannot clobber a newer choice.
package theme
