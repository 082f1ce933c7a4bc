package simplify

import "github.com/dhamidi/simplipom/pom"

// infoField copies one descriptive field from an ancestor when the child
// leaves it empty.
type infoField struct {
	name    string
	isEmpty func(p *pom.Project) bool
	copy    func(dst, src *pom.Project)
}

var (
	urlField = infoField{"Url",
		func(p *pom.Project) bool { return p.URL == "" },
		func(dst, src *pom.Project) { dst.URL = src.URL }}
	licensesField = infoField{"Licenses",
		func(p *pom.Project) bool { return len(p.Licenses) == 0 },
		func(dst, src *pom.Project) { dst.Licenses = pom.CloneLicenses(src.Licenses) }}
	developersField = infoField{"Developers",
		func(p *pom.Project) bool { return len(p.Developers) == 0 },
		func(dst, src *pom.Project) { dst.Developers = pom.CloneDevelopers(src.Developers) }}
	scmField = infoField{"Scm",
		func(p *pom.Project) bool { return p.SCM == nil },
		func(dst, src *pom.Project) { dst.SCM = pom.CloneSCM(src.SCM) }}
	organizationField = infoField{"Organization",
		func(p *pom.Project) bool { return p.Organization == nil },
		func(dst, src *pom.Project) { dst.Organization = pom.CloneOrganization(src.Organization) }}
	issueManagementField = infoField{"IssueManagement",
		func(p *pom.Project) bool { return p.IssueManagement == nil },
		func(dst, src *pom.Project) { dst.IssueManagement = pom.CloneIssueManagement(src.IssueManagement) }}

	inceptionYearField = infoField{"InceptionYear",
		func(p *pom.Project) bool { return p.InceptionYear == "" },
		func(dst, src *pom.Project) { dst.InceptionYear = src.InceptionYear }}
	contributorsField = infoField{"Contributors",
		func(p *pom.Project) bool { return len(p.Contributors) == 0 },
		func(dst, src *pom.Project) { dst.Contributors = pom.CloneContributors(src.Contributors) }}
	mailingListsField = infoField{"MailingLists",
		func(p *pom.Project) bool { return len(p.MailingLists) == 0 },
		func(dst, src *pom.Project) { dst.MailingLists = pom.CloneMailingLists(src.MailingLists) }}
	ciManagementField = infoField{"CiManagement",
		func(p *pom.Project) bool { return p.CIManagement == nil },
		func(dst, src *pom.Project) { dst.CIManagement = pom.CloneCIManagement(src.CIManagement) }}
)

// Fields an open source project must publish, plus two that help.
var openSourceInfo = []infoField{
	urlField, licensesField, developersField, scmField,
	organizationField, issueManagementField,
}

var parentInfo = []infoField{
	inceptionYearField, contributorsField, mailingListsField, ciManagementField,
}

func (s *Simplifier) CopyProjectInfoFromParentForOpenSourceProject() {
	if s.copiedOpenSourceInfo || !s.config.OpenSourceProject || s.original.Parent != nil {
		return
	}
	s.copiedOpenSourceInfo = true

	s.log.Info("Copy project info from parent for the open source project:")
	s.copyParentInfo(openSourceInfo)
}

func (s *Simplifier) CopyProjectInfoFromParent() {
	if s.copiedParentInfo || !s.config.OpenSourceProject || s.original.Parent != nil {
		return
	}
	s.copiedParentInfo = true

	s.log.Info("Copy project info from parent:")
	s.copyParentInfo(parentInfo)
	s.CopyProjectInfoFromParentForOpenSourceProject()
}

func (s *Simplifier) copyParentInfo(fields []infoField) {
	for _, f := range fields {
		s.copyField(f)
	}
}

// copyField takes the value from the nearest ancestor, as written by its
// author, that has one. A failure only affects this field.
func (s *Simplifier) copyField(f infoField) {
	defer func() {
		if r := recover(); r != nil {
			s.warnf("Copy %s failed: %v", f.name, r)
		}
	}()

	if !f.isEmpty(s.original) {
		return
	}
	for _, ancestor := range s.project.Ancestors() {
		if ancestor.Original == nil || f.isEmpty(ancestor.Original) {
			continue
		}
		s.log.Infof("   Copy %s.", f.name)
		f.copy(s.original, ancestor.Original)
		return
	}
}
