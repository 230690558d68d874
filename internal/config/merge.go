package config

// Profiles are combined field by field. Each configurable field follows
// exactly one of five policies, and the merge methods in this file are the
// complete field-to-policy mapping:
//
//	stickyTrue     booleans: incoming true sets, incoming false never clears
//	lastSet        optional scalars: incoming non-nil overwrites unconditionally
//	appendAll      accumulating lists: append incoming, keeping order and duplicates
//	firstNonEmpty  replaceable lists: incoming only fills an empty value, never clears
//	unionKeys      maps: key-wise union, incoming keys overwrite existing ones
//
// The receiver is the accumulator, the argument the incoming document.
// Merge combines separately resolved profiles: lastSet means the profile
// merged last wins, while firstNonEmpty keeps the first value that was
// ever set and never clears it.
//
// Within one profile chain the direction of the replaceable lists turns
// around: applyDocument lays a referencing document over the already-merged
// result of the profiles it includes, and there the document's non-empty
// value wins (lastNonEmpty), so a profile always beats its includes.

func stickyTrue(existing, incoming bool) bool {
	return existing || incoming
}

func lastSet[T any](existing, incoming *T) *T {
	if incoming != nil {
		return incoming
	}
	return existing
}

func appendAll[S ~[]E, E any](existing, incoming S) S {
	return append(existing, incoming...)
}

func firstNonEmpty[S ~[]E, E any](existing, incoming S) S {
	if len(existing) == 0 {
		return incoming
	}
	return existing
}

func lastNonEmpty[S ~[]E, E any](existing, incoming S) S {
	if len(incoming) > 0 {
		return incoming
	}
	return existing
}

func unionKeys[K comparable, V any](existing, incoming map[K]V) map[K]V {
	if len(incoming) == 0 {
		return existing
	}
	if existing == nil {
		existing = make(map[K]V, len(incoming))
	}
	for k, v := range incoming {
		existing[k] = v
	}
	return existing
}

// Merge combines an incoming parsed profile document into the accumulator.
func (c *Config) Merge(incoming Config) {
	c.Global.merge(incoming.Global)
	c.Repository.merge(incoming.Repository)
	c.SnapshotFilter.merge(incoming.SnapshotFilter)
	c.Backup.merge(incoming.Backup)
	c.Forget.merge(incoming.Forget)
	c.Copy.merge(incoming.Copy)
}

func (g *GlobalOptions) merge(in GlobalOptions) {
	g.UseProfiles = appendAll(g.UseProfiles, in.UseProfiles)
	g.DryRun = stickyTrue(g.DryRun, in.DryRun)
	g.CheckIndex = stickyTrue(g.CheckIndex, in.CheckIndex)
	g.LogLevel = lastSet(g.LogLevel, in.LogLevel)
	g.LogFile = lastSet(g.LogFile, in.LogFile)
	g.NoProgress = stickyTrue(g.NoProgress, in.NoProgress)
	g.ProgressInterval = lastSet(g.ProgressInterval, in.ProgressInterval)
	g.Env = unionKeys(g.Env, in.Env)
	g.RunBefore = firstNonEmpty(g.RunBefore, in.RunBefore)
	g.RunAfter = firstNonEmpty(g.RunAfter, in.RunAfter)
}

func (r *RepositoryOptions) merge(in RepositoryOptions) {
	r.Repository = lastSet(r.Repository, in.Repository)
	r.PasswordFile = lastSet(r.PasswordFile, in.PasswordFile)
	r.PasswordCommand = firstNonEmpty(r.PasswordCommand, in.PasswordCommand)
	r.CacheDir = lastSet(r.CacheDir, in.CacheDir)
	r.NoCache = stickyTrue(r.NoCache, in.NoCache)
	r.Engine = lastSet(r.Engine, in.Engine)
	r.Options = unionKeys(r.Options, in.Options)
}

func (f *SnapshotFilter) merge(in SnapshotFilter) {
	f.FilterHosts = firstNonEmpty(f.FilterHosts, in.FilterHosts)
	f.FilterPaths = firstNonEmpty(f.FilterPaths, in.FilterPaths)
	f.FilterTags = firstNonEmpty(f.FilterTags, in.FilterTags)
}

func (b *BackupOptions) merge(in BackupOptions) {
	b.Sources = firstNonEmpty(b.Sources, in.Sources)
	b.Excludes = firstNonEmpty(b.Excludes, in.Excludes)
	b.Tags = firstNonEmpty(b.Tags, in.Tags)
	b.Host = lastSet(b.Host, in.Host)
	b.OneFileSystem = stickyTrue(b.OneFileSystem, in.OneFileSystem)
	b.IgnoreCtime = stickyTrue(b.IgnoreCtime, in.IgnoreCtime)
}

func (f *ForgetOptions) merge(in ForgetOptions) {
	f.KeepLast = lastSet(f.KeepLast, in.KeepLast)
	f.KeepDaily = lastSet(f.KeepDaily, in.KeepDaily)
	f.KeepWeekly = lastSet(f.KeepWeekly, in.KeepWeekly)
	f.KeepMonthly = lastSet(f.KeepMonthly, in.KeepMonthly)
	f.KeepYearly = lastSet(f.KeepYearly, in.KeepYearly)
	f.KeepWithin = lastSet(f.KeepWithin, in.KeepWithin)
	f.Prune = stickyTrue(f.Prune, in.Prune)
}

func (c *CopyOptions) merge(in CopyOptions) {
	c.Targets = firstNonEmpty(c.Targets, in.Targets)
}

// applyDocument lays a parsed profile document over the merged result of
// the profiles it includes. Everything follows the Merge policies except
// the replaceable lists, which the document overrides whenever it sets
// them.
func (c *Config) applyDocument(doc Config) {
	c.Global.apply(doc.Global)
	c.Repository.apply(doc.Repository)
	c.SnapshotFilter.apply(doc.SnapshotFilter)
	c.Backup.apply(doc.Backup)
	c.Forget.merge(doc.Forget)
	c.Copy.apply(doc.Copy)
}

func (g *GlobalOptions) apply(in GlobalOptions) {
	g.merge(in)
	g.RunBefore = lastNonEmpty(g.RunBefore, in.RunBefore)
	g.RunAfter = lastNonEmpty(g.RunAfter, in.RunAfter)
}

func (r *RepositoryOptions) apply(in RepositoryOptions) {
	r.merge(in)
	r.PasswordCommand = lastNonEmpty(r.PasswordCommand, in.PasswordCommand)
}

func (f *SnapshotFilter) apply(in SnapshotFilter) {
	f.FilterHosts = lastNonEmpty(f.FilterHosts, in.FilterHosts)
	f.FilterPaths = lastNonEmpty(f.FilterPaths, in.FilterPaths)
	f.FilterTags = lastNonEmpty(f.FilterTags, in.FilterTags)
}

func (b *BackupOptions) apply(in BackupOptions) {
	b.merge(in)
	b.Sources = lastNonEmpty(b.Sources, in.Sources)
	b.Excludes = lastNonEmpty(b.Excludes, in.Excludes)
	b.Tags = lastNonEmpty(b.Tags, in.Tags)
}

func (c *CopyOptions) apply(in CopyOptions) {
	c.Targets = lastNonEmpty(c.Targets, in.Targets)
}
