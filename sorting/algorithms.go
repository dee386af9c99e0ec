// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

func (r *run) bubble() error {
	d := r.data
	n := len(d)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := r.compare(j, j+1, d[j], d[j+1],
				fmt.Sprintf("Comparing %d and %d", d[j], d[j+1])); err != nil {
				return err
			}
			if d[j] > d[j+1] {
				if err := r.swap(j, j+1, fmt.Sprintf("Swapped %d and %d", d[j], d[j+1])); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (r *run) quick(low, high int) error {
	if low >= high {
		return nil
	}
	p, err := r.partition(low, high)
	if err != nil {
		return err
	}
	if err = r.quick(low, p-1); err != nil {
		return err
	}

	return r.quick(p+1, high)
}

// partition is Lomuto's scheme around d[high]; it returns the pivot's final index.
func (r *run) partition(low, high int) (int, error) {
	d := r.data
	pivot := d[high]
	if err := r.emit(core.Event{
		Kind:    core.Partition,
		Indices: []int{low, high},
		Values:  []int{pivot},
		Message: fmt.Sprintf("Partitioning around pivot: %d", pivot),
	}); err != nil {
		return 0, err
	}

	i := low - 1
	for j := low; j < high; j++ {
		if err := r.compare(j, high, d[j], pivot,
			fmt.Sprintf("Comparing %d with pivot %d", d[j], pivot)); err != nil {
			return 0, err
		}
		if d[j] < pivot {
			i++
			if i != j {
				if err := r.swap(i, j, fmt.Sprintf("Moved %d before pivot", d[j])); err != nil {
					return 0, err
				}
			}
		}
	}
	if err := r.swap(i+1, high, fmt.Sprintf("Placed pivot %d at position %d", pivot, i+1)); err != nil {
		return 0, err
	}

	return i + 1, nil
}

func (r *run) mergeSort(left, right int) error {
	if left >= right {
		return nil
	}
	mid := (left + right) / 2
	if err := r.emit(core.Event{
		Kind:    core.Partition,
		Indices: []int{left, right},
		Message: fmt.Sprintf("Dividing array from %d to %d", left, right),
	}); err != nil {
		return err
	}
	if err := r.mergeSort(left, mid); err != nil {
		return err
	}
	if err := r.mergeSort(mid+1, right); err != nil {
		return err
	}

	return r.merge(left, mid, right)
}

// merge combines the sorted runs d[left..mid] and d[mid+1..right]. Ties take
// the left run first.
func (r *run) merge(left, mid, right int) error {
	d := r.data
	lo := append([]int(nil), d[left:mid+1]...)
	hi := append([]int(nil), d[mid+1:right+1]...)
	if err := r.emit(core.Event{
		Kind:    core.Merge,
		Indices: []int{left, mid, right},
		Values:  append(append([]int(nil), lo...), hi...),
		Message: fmt.Sprintf("Merging subarrays: %v and %v", lo, hi),
	}); err != nil {
		return err
	}

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if err := r.compare(left+i, mid+1+j, lo[i], hi[j],
			fmt.Sprintf("Comparing %d and %d", lo[i], hi[j])); err != nil {
			return err
		}
		if lo[i] <= hi[j] {
			d[k] = lo[i]
			i++
		} else {
			d[k] = hi[j]
			j++
		}
		if err := r.place(k); err != nil {
			return err
		}
		k++
	}
	for ; i < len(lo); i, k = i+1, k+1 {
		d[k] = lo[i]
		if err := r.place(k); err != nil {
			return err
		}
	}
	for ; j < len(hi); j, k = j+1, k+1 {
		d[k] = hi[j]
		if err := r.place(k); err != nil {
			return err
		}
	}

	return nil
}

// place reports a merge write at k. It is not counted as a swap.
func (r *run) place(k int) error {
	return r.emit(core.Event{
		Kind:     core.Swap,
		Indices:  []int{k},
		Values:   []int{r.data[k]},
		Snapshot: r.data,
		Message:  fmt.Sprintf("Placed %d at position %d", r.data[k], k),
	})
}

func (r *run) selection() error {
	d := r.data
	n := len(d)
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if err := r.compare(j, minIndex, d[j], d[minIndex],
				fmt.Sprintf("Comparing %d with current minimum %d", d[j], d[minIndex])); err != nil {
				return err
			}
			if d[j] < d[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			if err := r.swap(i, minIndex,
				fmt.Sprintf("Selected %d as minimum, moved to position %d", d[minIndex], i)); err != nil {
				return err
			}
		}
	}

	return nil
}
