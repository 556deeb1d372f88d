package wiring

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"gallows/internal/dataset"
)

var _ = ginkgo.Describe("Run", func() {
	ginkgo.It("measures the dictionary, writes the report, and emits the binned dataset", func() {
		dir := ginkgo.GinkgoT().TempDir()
		wordlist := filepath.Join(dir, "wordlist.txt")
		gomega.Expect(os.WriteFile(wordlist, []byte("cat\ncot\ncut\ndog\nbat\nox\n"), 0o644)).To(gomega.Succeed())
		reportPath := filepath.Join(dir, "report.tsv")
		datasetPath := filepath.Join(dir, "dataset.tsv")

		err := Run(context.Background(), wordlist, reportPath, "wrong_coverage", "wrong_freq_raw", 5, datasetPath)
		gomega.Expect(err).To(gomega.Succeed())

		data, err := os.ReadFile(reportPath)
		gomega.Expect(err).To(gomega.Succeed())
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		gomega.Expect(lines).To(gomega.HaveLen(7), "header plus one row per word")
		gomega.Expect(lines[0]).To(gomega.HavePrefix("word\tlength\t"))

		entries, err := dataset.Load(datasetPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(entries).To(gomega.HaveLen(6))
		for _, e := range entries {
			gomega.Expect(e.Difficulty.Valid()).To(gomega.BeTrue())
		}
	})
})
