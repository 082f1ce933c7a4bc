package simplify

// Step is one rewrite applied to the original model.
type Step func(*Simplifier)

// Policy is the fixed script a mode runs, together with the defaults it
// applies when the configuration leaves a keep flag unset.
type Policy struct {
	Mode          Mode
	Simplify      []Step
	AfterSimplify []Step
	Strategy      Strategy

	KeepProvided bool
	KeepOptional bool
	KeepTest     bool

	// KeepDeclaredDependencies leaves the declared dependency list as
	// written; only placeholders are substituted afterwards.
	KeepDeclaredDependencies bool
}

func steps(groups ...[]Step) []Step {
	var out []Step
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var housekeeping = []Step{
	(*Simplifier).RemoveReporting,
	(*Simplifier).RemoveReports,
	(*Simplifier).RemoveRepositories,
	(*Simplifier).RemovePluginRepositories,
	(*Simplifier).RemoveDistributionManagement,
	(*Simplifier).RemoveProfiles,
}

var libraryHead = []Step{
	(*Simplifier).RemoveParent,
	(*Simplifier).CopyProjectInfoFromParentForOpenSourceProject,
	(*Simplifier).RemoveDependencyManagement,
	(*Simplifier).ResetDependencies,
}

var library = steps(
	libraryHead,
	[]Step{
		(*Simplifier).RemoveProperties,
		(*Simplifier).RemovePrerequisites,
		(*Simplifier).RemoveBuild,
	},
	housekeeping,
)

var pomHead = []Step{
	(*Simplifier).RemoveParent,
}

var dependenciesCatalog = steps(
	pomHead,
	[]Step{(*Simplifier).RemoveDependencies},
)

// parentLink tidies a parent declaration that survived simplification.
var parentLink = []Step{
	(*Simplifier).RemoveParentRelativePath,
}

var Policies = map[Mode]Policy{
	ModeJar: {
		Mode:     ModeJar,
		Simplify: library,
		Strategy: StrategyLiteral,
	},
	ModeWar: {
		Mode:     ModeWar,
		Simplify: library,
		Strategy: StrategyLiteral,
	},
	ModeStarter: {
		Mode: ModeStarter,
		Simplify: steps(
			libraryHead,
			[]Step{
				(*Simplifier).RemovePrerequisites,
				(*Simplifier).RemoveBuild,
			},
			housekeeping,
		),
		Strategy:     StrategyLiteral,
		KeepProvided: true,
		KeepOptional: true,
		KeepTest:     true,
	},
	ModeShade: {
		Mode:                     ModeShade,
		Simplify:                 library,
		Strategy:                 StrategyLiteral,
		KeepDeclaredDependencies: true,
	},
	ModeMavenPlugin: {
		Mode: ModeMavenPlugin,
		Simplify: steps(
			libraryHead,
			[]Step{(*Simplifier).RemoveProperties},
			housekeeping,
		),
		AfterSimplify: []Step{(*Simplifier).RemoveBuild},
		Strategy:      StrategyLiteral,
	},
	ModePom: {
		Mode:          ModePom,
		Simplify:      pomHead,
		AfterSimplify: parentLink,
		Strategy:      StrategyAuto,
	},
	ModeDependencies: {
		Mode:          ModeDependencies,
		Simplify:      dependenciesCatalog,
		AfterSimplify: parentLink,
		Strategy:      StrategyAuto,
	},
	ModeBom: {
		Mode: ModeBom,
		Simplify: steps(
			[]Step{
				(*Simplifier).RemoveParent,
				(*Simplifier).CopyProjectInfoFromParent,
				(*Simplifier).ResetDependencyManagement,
				(*Simplifier).RemoveDependencies,
				(*Simplifier).RemoveProperties,
			},
			dependenciesCatalog,
		),
		Strategy: StrategyLiteral,
	},
	ModeNoop: {
		Mode:          ModeNoop,
		Simplify:      []Step{(*Simplifier).RemoveParentByConfig},
		AfterSimplify: parentLink,
		Strategy:      StrategyAuto,
	},
}

// PolicyFor returns the policy of mode, falling back to noop.
func PolicyFor(mode Mode) Policy {
	if p, ok := Policies[mode]; ok {
		return p
	}
	return Policies[ModeNoop]
}
