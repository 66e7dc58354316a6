package cli

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/distance"
	"github.com/hupe1980/vecmath/support"
)

func printOut(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "Print the inner product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			opts := stateFrom(cmd).opts
			if ops.isComplex() {
				printOut(cmd, vecmath.InnerProduct[complex128](ops.cplx[0], ops.cplx[1], opts...))
				return nil
			}
			printOut(cmd, vecmath.InnerProduct[float64](ops.real[0], ops.real[1], opts...))
			return nil
		}),
	}
}

func newCrossCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cross A B",
		Short: "Print the cross product of two 3D vectors",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if ops.isComplex() {
				printOut(cmd, vecmath.Cross[complex128](ops.cplx[0], ops.cplx[1]))
				return nil
			}
			printOut(cmd, vecmath.Cross[float64](ops.real[0], ops.real[1]))
			return nil
		}),
	}
}

func newTripleCmd() *cobra.Command {
	var vectorForm bool
	cmd := &cobra.Command{
		Use:   "triple A B C",
		Short: "Print the scalar triple product ⟨C, A×B⟩ or the vector triple product C×(A×B)",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			opts := stateFrom(cmd).opts
			switch {
			case ops.isComplex() && vectorForm:
				printOut(cmd, vecmath.VectorTripleProduct[complex128](ops.cplx[0], ops.cplx[1], ops.cplx[2]))
			case ops.isComplex():
				printOut(cmd, vecmath.ScalarTripleProduct[complex128](ops.cplx[0], ops.cplx[1], ops.cplx[2], opts...))
			case vectorForm:
				printOut(cmd, vecmath.VectorTripleProduct[float64](ops.real[0], ops.real[1], ops.real[2]))
			default:
				printOut(cmd, vecmath.ScalarTripleProduct[float64](ops.real[0], ops.real[1], ops.real[2], opts...))
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&vectorForm, "vector", false, "print the vector triple product")
	return cmd
}

func newNormCmd() *cobra.Command {
	var kind string
	var p float64
	cmd := &cobra.Command{
		Use:   "norm A",
		Short: "Print a norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("p") {
				if ops.isComplex() {
					printOut(cmd, vecmath.PNorm[complex128](ops.cplx[0], p))
				} else {
					printOut(cmd, vecmath.PNorm[float64](ops.real[0], p))
				}
				return nil
			}
			if kind == "linf" || kind == "max" {
				if ops.isComplex() {
					printOut(cmd, vecmath.NormInf[complex128](ops.cplx[0]))
				} else {
					printOut(cmd, vecmath.NormInf[float64](ops.real[0]))
				}
				return nil
			}
			k, err := vecmath.ParseNormKind(kind)
			if err != nil {
				return err
			}
			if ops.isComplex() {
				printOut(cmd, vecmath.Norm[complex128](ops.cplx[0], k))
			} else {
				printOut(cmd, vecmath.Norm[float64](ops.real[0], k))
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "l2", "norm kind (l0|l1|l2|linf|max)")
	cmd.Flags().Float64Var(&p, "p", 2, "compute the p-norm for p >= 1 instead")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize A",
		Short: "Print the unit vector in the direction of A",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if ops.isComplex() {
				printOut(cmd, vecmath.Normalized[complex128](ops.cplx[0]))
				return nil
			}
			printOut(cmd, vecmath.Normalized[float64](ops.real[0]))
			return nil
		}),
	}
}

func newAngleCmd() *cobra.Command {
	var deg bool
	cmd := &cobra.Command{
		Use:   "angle A B",
		Short: "Print the angle between two vectors in radians",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			opts := stateFrom(cmd).opts
			var a float64
			if ops.isComplex() {
				a = vecmath.Angle[complex128](ops.cplx[0], ops.cplx[1], opts...)
			} else {
				a = vecmath.Angle[float64](ops.real[0], ops.real[1], opts...)
			}
			if deg {
				a = a * 180 / math.Pi
			}
			printOut(cmd, a)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&deg, "degrees", false, "print the angle in degrees")
	return cmd
}

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project TO FROM",
		Short: "Print the projection of FROM onto TO",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			opts := stateFrom(cmd).opts
			if ops.isComplex() {
				printOut(cmd, vecmath.Projection[complex128](ops.cplx[0], ops.cplx[1], opts...))
				return nil
			}
			printOut(cmd, vecmath.Projection[float64](ops.real[0], ops.real[1], opts...))
			return nil
		}),
	}
}

type predicate func(ops operands, opts []vecmath.Option) bool

func parallel(ops operands, opts []vecmath.Option) bool {
	if ops.isComplex() {
		return vecmath.AreParallel[complex128](ops.cplx[0], ops.cplx[1], opts...)
	}
	return vecmath.AreParallel[float64](ops.real[0], ops.real[1], opts...)
}

func perpendicular(ops operands, opts []vecmath.Option) bool {
	if ops.isComplex() {
		return vecmath.ArePerpendicular[complex128](ops.cplx[0], ops.cplx[1], opts...)
	}
	return vecmath.ArePerpendicular[float64](ops.real[0], ops.real[1], opts...)
}

func coplanar(ops operands, opts []vecmath.Option) bool {
	if ops.isComplex() {
		return vecmath.AreCoplanar[complex128](ops.cplx[0], ops.cplx[1], ops.cplx[2], opts...)
	}
	return vecmath.AreCoplanar[float64](ops.real[0], ops.real[1], ops.real[2], opts...)
}

func newPredicateCmd(name, short string, n int, fn predicate) *cobra.Command {
	use := name
	for i := range n {
		use += " " + string(rune('A'+i))
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			printOut(cmd, fn(ops, stateFrom(cmd).opts))
			return nil
		}),
	}
}

func newDistanceCmd() *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Print the distance between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			m, err := distance.ParseMetric(metric)
			if err != nil {
				return err
			}
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if ops.isComplex() {
				fn, err := distance.Provider[complex128](m)
				if err != nil {
					return err
				}
				printOut(cmd, fn(ops.cplx[0], ops.cplx[1]))
				return nil
			}
			fn, err := distance.Provider[float64](m)
			if err != nil {
				return err
			}
			printOut(cmd, fn(ops.real[0], ops.real[1]))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", distance.MetricEuclidean.String(), "distance metric")
	return cmd
}

func newCoordsCmd() *cobra.Command {
	var system string
	var inverse bool
	cmd := &cobra.Command{
		Use:   "coords A",
		Short: "Convert a real vector to polar, spherical or cylindrical coordinates",
		Long: "Convert a real vector to polar, spherical or cylindrical coordinates.\n" +
			"With --inverse, A holds the coordinates (r,θ), (r,azimuth,polar) or (r,azimuth,z)\n" +
			"and the Cartesian vector is printed.",
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			vs, err := parseRealOperands(args)
			if err != nil {
				return err
			}
			v := vs[0]
			switch system {
			case "polar":
				if inverse {
					if v.Len() != 2 {
						return fmt.Errorf("polar coordinates need 2 components, got %d", v.Len())
					}
					printOut(cmd, vecmath.FromPolar[float64](vecmath.Polar{R: v.At(0), Theta: v.At(1)}))
					return nil
				}
				printOut(cmd, vecmath.ToPolar[float64](v))
			case "spherical":
				if inverse {
					if v.Len() != 3 {
						return fmt.Errorf("spherical coordinates need 3 components, got %d", v.Len())
					}
					printOut(cmd, vecmath.FromSpherical[float64](vecmath.Spherical{R: v.At(0), Azimuth: v.At(1), Polar: v.At(2)}))
					return nil
				}
				printOut(cmd, vecmath.ToSpherical[float64](v))
			case "cylindrical":
				if inverse {
					if v.Len() != 3 {
						return fmt.Errorf("cylindrical coordinates need 3 components, got %d", v.Len())
					}
					printOut(cmd, vecmath.FromCylindrical[float64](vecmath.Cylindrical{R: v.At(0), Azimuth: v.At(1), Z: v.At(2)}))
					return nil
				}
				printOut(cmd, vecmath.ToCylindrical[float64](v))
			default:
				return fmt.Errorf("unknown coordinate system %q", system)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&system, "system", "s", "polar", "coordinate system (polar|spherical|cylindrical)")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "convert from the coordinate system to Cartesian")
	return cmd
}

func newRotateCmd() *cobra.Command {
	var axis string
	var angle float64
	var deg bool
	cmd := &cobra.Command{
		Use:   "rotate A",
		Short: "Rotate a real 3D vector about a coordinate axis",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ax, err := vecmath.ParseAxis(axis)
			if err != nil {
				return err
			}
			vs, err := parseRealOperands(args)
			if err != nil {
				return err
			}
			if deg {
				angle = angle * math.Pi / 180
			}
			printOut(cmd, vecmath.Rotate[float64](vs[0], ax, angle))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&axis, "axis", "a", "z", "rotation axis (x|y|z)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle (radians unless --degrees)")
	cmd.Flags().BoolVar(&deg, "degrees", false, "interpret --angle in degrees")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var count int
	var lower, upper float64
	var cplx bool
	var out, compression string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a vector with uniformly distributed elements in [lower, upper)",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			if cplx {
				return emit(cmd, vecmath.RandomVector[complex128](lower, upper, count), out, compression)
			}
			return emit(cmd, vecmath.RandomVector[float64](lower, upper, count), out, compression)
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of elements")
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower bound (inclusive)")
	cmd.Flags().Float64Var(&upper, "upper", 1, "upper bound (exclusive)")
	cmd.Flags().BoolVar(&cplx, "complex", false, "draw complex elements")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write a binary frame to this file instead of printing")
	cmd.Flags().StringVar(&compression, "compression", "none", "frame compression (none|lz4|zstd)")
	return cmd
}

// emit prints v or, when path is set, writes it as a binary frame.
func emit[T vecmath.Scalar](cmd *cobra.Command, v *vecmath.Vector[T], path, compression string) error {
	if path == "" {
		printOut(cmd, v)
		return nil
	}
	c, err := codec.ParseCompression(compression)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := codec.WriteVector[T](&buf, v, codec.WithCompression(c)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	stateFrom(cmd).log.Info("vector written", "path", path, "count", v.Len(), "compression", c.String())
	return nil
}

func newEncodeCmd() *cobra.Command {
	var out, compression, codecName string
	cmd := &cobra.Command{
		Use:   "encode A",
		Short: "Encode a vector as a JSON document or, with --out, as a binary frame",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			if out != "" {
				if ops.isComplex() {
					return emit(cmd, ops.cplx[0], out, compression)
				}
				return emit(cmd, ops.real[0], out, compression)
			}

			c, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q", codecName)
			}
			var data []byte
			if ops.isComplex() {
				data, err = codec.EncodeJSON[complex128](c, ops.cplx[0])
			} else {
				data, err = codec.EncodeJSON[float64](c, ops.real[0])
			}
			if err != nil {
				return err
			}
			printOut(cmd, string(data))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write a binary frame to this file")
	cmd.Flags().StringVar(&compression, "compression", "none", "frame compression (none|lz4|zstd)")
	cmd.Flags().StringVar(&codecName, "codec", codec.Default.Name(), "JSON codec (json|go-json)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Print the vector stored in a binary frame",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, err := codec.ReadHeader(data)
			if err != nil {
				return err
			}
			switch {
			case h.Kind.IsComplex():
				return decodeFrame[complex128](cmd, h, data)
			case h.Kind.IsInteger() && h.Kind.Bits() > 32 && h.Kind.IsUnsigned():
				return decodeFrame[uint64](cmd, h, data)
			case h.Kind.IsInteger() && h.Kind.Bits() > 32:
				return decodeFrame[int64](cmd, h, data)
			default:
				return decodeFrame[float64](cmd, h, data)
			}
		}),
	}
}

// decodeFrame prints a frame decoded into T, the widest kind of its family the
// stored kind converts to without loss.
func decodeFrame[T vecmath.Scalar](cmd *cobra.Command, h codec.Header, data []byte) error {
	v, err := codec.UnmarshalBinary[T](data)
	if err != nil {
		return err
	}
	printOut(cmd, h.Kind, h.Extent, v)
	return nil
}

func newSupportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "support A",
		Short: "Print the indices of the non-zero elements of a vector and its density",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			eps := stateFrom(cmd).cfg.Epsilon
			if ops.isComplex() {
				printOut(cmd, support.Of[complex128](ops.cplx[0], eps), support.Density[complex128](ops.cplx[0], eps))
				return nil
			}
			printOut(cmd, support.Of[float64](ops.real[0], eps), support.Density[float64](ops.real[0], eps))
			return nil
		}),
	}
}
