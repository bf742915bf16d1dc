package cmd

import (
	"errors"
	"os"
	"path"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"github.com/ovn-org/ovn-fake-multinode/mocks"
	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/netutils"
)

var _ = Describe("ip_gen root command", func() {

	AfterEach(func() {
		os.Unsetenv("IP_GEN_STRICT")
		os.Unsetenv("IP_GEN_DEBUG")
	})

	DescribeTable("prints the target address and exits",
		func(args []string, expectedOut string, expectedCode int) {
			out, code := run(NewRootOptions(), args...)
			assert.Equal(GinkgoT(), expectedOut, out)
			assert.Equal(GinkgoT(), expectedCode, code)
		},
		Entry("next address", []string{"10.0.0.0/30", "10.0.0.0", "1"}, "10.0.0.1\n", 0),
		Entry("past the end", []string{"10.0.0.0/30", "10.0.0.0", "5"}, "", 0),
		Entry("start address outside the network", []string{"10.0.0.0/30", "10.0.0.5", "0"}, "", 1),
		Entry("malformed network", []string{"bad-cidr", "10.0.0.0", "0"}, "", 1),
		Entry("zero offset", []string{"10.0.0.0/24", "10.0.0.10", "0"}, "10.0.0.10\n", 0),
		Entry("non-integer index", []string{"10.0.0.0/30", "10.0.0.0", "abc"}, "", 1),
		Entry("no arguments", []string{}, "", 1),
		Entry("missing index", []string{"10.0.0.0/30", "10.0.0.0"}, "", 1),
		Entry("extra argument", []string{"10.0.0.0/30", "10.0.0.0", "1", "2"}, "", 1),
		Entry("negative index after --", []string{"--", "10.0.0.0/24", "10.0.0.9", "-2"}, "10.0.0.7\n", 0),
		Entry("negative index read as a flag", []string{"10.0.0.0/24", "10.0.0.9", "-2"}, "", 1),
		Entry("unknown flag", []string{"--bogus", "10.0.0.0/30", "10.0.0.0", "1"}, "", 1),
		Entry("strict and in range", []string{"--strict", "10.0.0.0/30", "10.0.0.0", "3"}, "10.0.0.3\n", 0),
		Entry("strict and past the end", []string{"--strict", "10.0.0.0/30", "10.0.0.0", "4"}, "", 1),
		Entry("debug does not change stdout", []string{"--debug", "10.0.0.0/30", "10.0.0.0", "1"}, "10.0.0.1\n", 0),
		Entry("help as the network", []string{"help", "10.0.0.0", "0"}, "", 1),
		Entry("help alone", []string{"help"}, "", 1),
		Entry("version as the network", []string{"version", "10.0.0.0", "0"}, "", 1),
		Entry("advanced as the network", []string{"advanced", "10.0.0.0", "0"}, "", 1),
		Entry("completion as the network", []string{"completion", "10.0.0.0", "0"}, "", 1),
		Entry("completion with a shell name", []string{"completion", "bash"}, "", 1),
	)

	Context("with configuration", func() {
		It("reads strict mode from a config file", func() {
			out, code := run(NewRootOptions(), "--config", "testdata/strict.yaml", "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 1, code)
		})
		It("reads strict mode from a config directory", func() {
			out, code := run(NewRootOptions(), "--config", "testdata/confdir", "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 1, code)
		})
		It("fails when the config path does not exist", func() {
			out, code := run(NewRootOptions(), "--config", "testdata/missing.yaml", "10.0.0.0/30", "10.0.0.0", "1")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 1, code)
		})
		It("reads strict mode from the environment", func() {
			Expect(os.Setenv("IP_GEN_STRICT", "true")).To(Succeed())
			_, code := run(NewRootOptions(), "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), 1, code)
		})
		It("lets --strict=false override a config file", func() {
			out, code := run(NewRootOptions(), "--strict=false", "--config", "testdata/strict.yaml", "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 0, code)
		})
		It("lets --strict=false override the environment", func() {
			Expect(os.Setenv("IP_GEN_STRICT", "true")).To(Succeed())
			_, code := run(NewRootOptions(), "--strict=false", "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), 0, code)
		})
		It("lets --debug=false override the environment", func() {
			Expect(os.Setenv("IP_GEN_DEBUG", "true")).To(Succeed())
			opts := NewRootOptions()
			_, code := run(opts, "--debug=false", "10.0.0.0/30", "10.0.0.0", "1")
			assert.Equal(GinkgoT(), 0, code)
			assert.False(GinkgoT(), opts.Config.Debug)
		})
		It("keeps the environment value when the flag is not given", func() {
			Expect(os.Setenv("IP_GEN_DEBUG", "true")).To(Succeed())
			opts := NewRootOptions()
			_, code := run(opts, "10.0.0.0/30", "10.0.0.0", "1")
			assert.Equal(GinkgoT(), 0, code)
			assert.True(GinkgoT(), opts.Config.Debug)
		})
		It("picks up the config file in the home directory", func() {
			homeCfg := path.Join(tmpHome, ".ip_gen.yaml")
			Expect(os.WriteFile(homeCfg, []byte("STRICT: true\n"), 0644)).To(Succeed())
			defer os.Remove(homeCfg)

			_, code := run(NewRootOptions(), "10.0.0.0/30", "10.0.0.0", "4")
			assert.Equal(GinkgoT(), 1, code)
		})
		It("writes debug logs to the log file", func() {
			logFile := path.Join(tmpHome, "ip_gen.log")
			defer os.Remove(logFile)

			out, code := run(NewRootOptions(), "--log-file", logFile, "10.0.0.0/30", "10.0.0.0", "1")
			assert.Equal(GinkgoT(), "10.0.0.1\n", out)
			assert.Equal(GinkgoT(), 0, code)

			b, err := os.ReadFile(logFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(ContainSubstring("Using ip_gen config"))
		})
	})

	Context("with a mocked resolver", func() {
		var (
			mockCtrl *gomock.Controller
			fakeNet  *mocks.MockNetInterface
			opts     *RootOptions
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			fakeNet = mocks.NewMockNetInterface(mockCtrl)
			opts = NewRootOptions()
			opts.Net = fakeNet
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("passes the arguments through untouched", func() {
			fakeNet.EXPECT().ResolveOffset("10.1.0.0/16", "10.1.0.1", "+7").
				Return(netutils.Result{Address: "10.1.0.8", Found: true}, nil).Times(1)

			out, code := run(opts, "10.1.0.0/16", "10.1.0.1", "+7")
			assert.Equal(GinkgoT(), "10.1.0.8\n", out)
			assert.Equal(GinkgoT(), 0, code)
		})

		It("exits 1 without output on any resolver error", func() {
			fakeNet.EXPECT().ResolveOffset(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(netutils.Result{}, errors.New("fake error")).Times(1)

			out, code := run(opts, "a", "b", "c")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 1, code)
		})

		It("exits 0 without output when the target is not found", func() {
			fakeNet.EXPECT().ResolveOffset(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(netutils.Result{}, nil).Times(1)

			out, code := run(opts, "a", "b", "c")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 0, code)
		})

		It("hands command names to the resolver", func() {
			fakeNet.EXPECT().ResolveOffset("help", "10.0.0.0", "0").
				Return(netutils.Result{}, netutils.ErrInputFailure).Times(1)

			out, code := run(opts, "help", "10.0.0.0", "0")
			assert.Equal(GinkgoT(), "", out)
			assert.Equal(GinkgoT(), 1, code)
		})

		It("never resolves when the argument count is wrong", func() {
			_, code := run(opts, "a", "b")
			assert.Equal(GinkgoT(), 1, code)
		})
	})

	Context("exit code mapping", func() {
		It("maps nil to success and anything else to failure", func() {
			assert.Equal(GinkgoT(), 0, exitCode(nil))
			assert.Equal(GinkgoT(), 1, exitCode(ErrOutOfRange))
			assert.Equal(GinkgoT(), 1, exitCode(netutils.ErrInputFailure))
		})
	})
})
