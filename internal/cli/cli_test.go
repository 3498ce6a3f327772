package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/cli"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("interviewctl commands", func() {
	var (
		ctx    context.Context
		global cli.GlobalOptions
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir := GinkgoT().TempDir()
		global = cli.DefaultGlobalOptions()
		global.CandidatesFile = filepath.Join(dir, "candidates.xlsx")
		global.BackupDir = filepath.Join(dir, "backups")
		global.Sheet = "Sheet1"
		out = &bytes.Buffer{}

		o := &cli.InitOptions{GlobalOptions: global}
		Expect(o.Run(ctx, out)).To(Succeed())
	})

	It("creates a workbook with the standard columns once", func() {
		table, err := global.Store().LoadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Columns).To(ContainElements(model.ColCandidateID, model.ColQuestions, model.ColHistory))
		Expect(table.Rows).To(BeEmpty())

		o := &cli.InitOptions{GlobalOptions: global}
		Expect(o.Run(ctx, out)).To(MatchError(ContainSubstring("already exists")))
		o.Force = true
		Expect(o.Run(ctx, out)).To(Succeed())
	})

	Context("with candidates", func() {
		BeforeEach(func() {
			Expect(repository.CreateCandidatesFile(global.CandidatesFile, global.Sheet,
				[]string{"candidate_id", "name", "email", "status"},
				[][]string{
					{"c001", "Asha", "asha@example.com", "pending"},
					{"c002", "Ben", "ben@example.com", "completed"},
				},
			)).To(Succeed())
		})

		It("lists candidates as a table and as JSON", func() {
			o := &cli.ListOptions{GlobalOptions: global, Status: "pending", Page: 1, PageSize: 10}
			Expect(o.Run(ctx, out)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("c001"))
			Expect(out.String()).NotTo(ContainSubstring("c002"))

			out.Reset()
			o = &cli.ListOptions{GlobalOptions: global, Status: "all", Page: 1, PageSize: 10, Output: "json"}
			Expect(o.Run(ctx, out)).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`"candidate_id": "c002"`))
		})

		It("shows a candidate", func() {
			o := &cli.ShowOptions{GlobalOptions: global}
			Expect(o.Run(ctx, out, "c001")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Candidate: Asha (asha@example.com)"))
			Expect(out.String()).To(ContainSubstring("No summary available yet."))

			Expect(o.Run(ctx, out, "c999")).To(MatchError(repository.ErrCandidateNotFound))
		})

		It("rejects unknown output formats", func() {
			o := &cli.ShowOptions{GlobalOptions: global, Output: "xml"}
			Expect(o.Validate(nil)).To(HaveOccurred())
		})

		It("sets a candidate's status", func() {
			cmd := cli.NewCmdSetStatus()
			cmd.SetArgs([]string{"c002", "Pending", "--file", global.CandidatesFile, "--backup-dir", global.BackupDir, "--sheet", global.Sheet})
			cmd.SetOut(out)
			Expect(cmd.ExecuteContext(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("c002 is now pending"))

			c, err := global.Store().FindByID("c002")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Status()).To(Equal("pending"))
		})

		It("requires an answers file for interviews", func() {
			o := &cli.InterviewOptions{GlobalOptions: global}
			Expect(o.Validate(nil)).To(MatchError(ContainSubstring("--answers")))

			path := filepath.Join(GinkgoT().TempDir(), "answers.yaml")
			Expect(os.WriteFile(path, []byte("answers: [\n"), 0o644)).To(Succeed())
			o.AnswersFile = path
			Expect(o.Run(ctx, out, "c001")).To(MatchError(ContainSubstring("parsing answers")))
		})
	})
})
