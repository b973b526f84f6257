package cli

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Giulio2002/keccak"
)

// options is the resolved configuration of one keccaksum run.
type options struct {
	bits    int
	double  bool
	hmacKey []byte // nil unless --hmac-key was given
	text    bool
}

func loadOptions(v *viper.Viper) (options, error) {
	opts := options{
		bits:   v.GetInt("bits"),
		double: v.GetBool("double"),
		text:   v.GetBool("string"),
	}
	if _, err := keccak.New(opts.bits); err != nil {
		return opts, err
	}
	if k := v.GetString("hmac-key"); k != "" {
		key, err := hex.DecodeString(k)
		if err != nil {
			return opts, errors.Wrap(err, "decoding --hmac-key")
		}
		opts.hmacKey = key
	}
	if opts.double && opts.hmacKey != nil {
		return opts, errors.New("--double and --hmac-key are mutually exclusive")
	}
	return opts, nil
}

func (o options) newHash() (hash.Hash, error) {
	if o.hmacKey != nil {
		m, err := keccak.NewHMAC(o.bits, o.hmacKey)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	h, err := keccak.New(o.bits)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// sum reads r to EOF and returns its hex digest (or HMAC tag).
func (o options) sum(name string, r io.Reader) (string, error) {
	h, err := o.newHash()
	if err != nil {
		return "", err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	d := h.Sum(nil)
	if o.double {
		h.Reset()
		h.Write(d)
		d = h.Sum(nil)
	}
	glog.V(1).Infof("%s: %d bytes, keccak-%d, double=%t, hmac=%t", name, n, o.bits, o.double, o.hmacKey != nil)
	return hex.EncodeToString(d), nil
}

func (o options) sumFile(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		return o.sum(name, stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()
	return o.sum(name, f)
}

func run(stdin io.Reader, stdout io.Writer, opts options, args []string) error {
	if opts.text {
		if len(args) == 0 {
			return errors.New("--string needs at least one argument")
		}
		for _, s := range args {
			digest, err := opts.sum("argument", strings.NewReader(s))
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s  %q\n", digest, s)
		}
		return nil
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		digest, err := opts.sumFile(name, stdin)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %s\n", digest, name)
	}
	return nil
}
